package narrative

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ResponseSchema reflects the JSON schema of Result for structured-output requests
func ResponseSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&Result{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect result schema")
	}
	schema.Version = ""
	schema.Title = "Mystery Event"
	schema.Description = "Outcome of mining a mystery stone."
	return schema, nil
}

// responseSchemaJSON renders the schema once for request bodies
func responseSchemaJSON() (json.RawMessage, error) {
	schema, err := ResponseSchema()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal result schema: %w", err)
	}
	return data, nil
}
