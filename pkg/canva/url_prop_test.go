package canva

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Identifier extraction round-trips for arbitrary identifier-shaped tokens.
func TestExtractDesignIDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("path segment after marker round-trips", prop.ForAll(
		func(id string) bool {
			url := fmt.Sprintf("https://www.canva.com/design/%s/view", id)
			got, err := ExtractDesignID(url)
			return err == nil && got == id
		},
		gen.Identifier(),
	))

	properties.Property("share query parameter round-trips", prop.ForAll(
		func(id string) bool {
			url := fmt.Sprintf("https://www.canva.com/share?utm_content=%s", id)
			got, err := ExtractDesignID(url)
			return err == nil && got == id
		},
		gen.Identifier(),
	))

	properties.Property("path strategy wins over query strategy", prop.ForAll(
		func(pathID, queryID string) bool {
			url := fmt.Sprintf("https://www.canva.com/design/%s/view?utm_content=%s", pathID, queryID)
			got, err := ExtractDesignID(url)
			return err == nil && got == pathID
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
