package finalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/carbux/fuel-receipts/internal/parser"
)

// overrideSchema constrains the operator-supplied creation payload. The shape
// mirrors the parser's payload so a corrected draft round-trips unchanged.
const overrideSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["station_name", "station_street_name", "station_postal_code", "station_city", "issued_at", "lines"],
  "additionalProperties": false,
  "properties": {
    "station_name": {"type": "string", "minLength": 1},
    "station_street_name": {"type": "string", "minLength": 1},
    "station_postal_code": {"type": "string", "minLength": 1},
    "station_city": {"type": "string", "minLength": 1},
    "issued_at": {"type": "string", "format": "date-time"},
    "total_cents": {"type": "integer", "minimum": 0},
    "vat_amount_cents": {"type": "integer", "minimum": 0},
    "lines": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["fuel_type", "quantity_milliliters", "unit_price_deci_cents", "vat_rate_percent"],
        "additionalProperties": false,
        "properties": {
          "fuel_type": {"type": "string", "enum": ["diesel", "sp95", "sp98", "gpl"]},
          "quantity_milliliters": {"type": "integer", "minimum": 1},
          "unit_price_deci_cents": {"type": "integer", "minimum": 0},
          "vat_rate_percent": {"type": "integer", "minimum": 0, "maximum": 100},
          "line_total_cents": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

var compiledOverrideSchema = jsonschema.MustCompileString("override.json", overrideSchema)

// decodeOverride validates raw operator JSON against the schema and decodes it
// into a creation payload. Schema violations come back as invalid input.
func decodeOverride(raw []byte) (*parser.CreationPayload, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("override is not valid JSON: %w", err)
	}
	if err := compiledOverrideSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("override rejected by schema: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var payload parser.CreationPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("override decode: %w", err)
	}
	return &payload, nil
}
