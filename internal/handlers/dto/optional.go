package dto

import (
	"encoding/json"
	"time"
)

// Os tipos Optional* distinguem campo ausente, nulo e com valor em
// payloads de atualização parcial: ausente não toca o campo, nulo
// limpa, valor substitui.

// OptionalString é um campo de texto de atualização parcial
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// OptionalTime é um campo de data de atualização parcial. Aceita
// data pura (2006-01-02) ou ISO-8601 completo.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	o.Value = &parsed
	return nil
}

// OptionalStringSlice é um campo de lista de atualização parcial.
// Nulo equivale a lista vazia.
type OptionalStringSlice struct {
	Set   bool
	Value []string
}

func (o *OptionalStringSlice) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = []string{}
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ParseDate interpreta datas vindas do frontend: data pura ou
// ISO-8601 completo
func ParseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed.UTC(), nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}
