package checklist

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	FunctionName = "generate_checklist"

	systemPrompt = "You are a legal assistant. Analyze the provided text and create a structured checklist of legal actions or considerations."
)

var itemFields = []string{"id", "title", "description", "priority", "timeframe", "category"}

// FunctionDefinition is the forced structured-output contract sent with
// every generation request.
func FunctionDefinition() openai.FunctionDefinition {
	return openai.FunctionDefinition{
		Name:        FunctionName,
		Description: "Generate a legal checklist based on the provided text",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"items": {
					Type: jsonschema.Array,
					Items: &jsonschema.Definition{
						Type: jsonschema.Object,
						Properties: map[string]jsonschema.Definition{
							"id":          {Type: jsonschema.String},
							"title":       {Type: jsonschema.String},
							"description": {Type: jsonschema.String},
							"priority":    {Type: jsonschema.String, Enum: enumValues(Priorities)},
							"timeframe":   {Type: jsonschema.String, Enum: enumValues(Timeframes)},
							"category":    {Type: jsonschema.String, Enum: enumValues(Categories)},
						},
						Required: itemFields,
					},
				},
				"summary": {Type: jsonschema.String},
			},
			Required: []string{"items", "summary"},
		},
	}
}
