package gormdb

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Funções de normalização entre linhas cruas e entidades. O banco pode
// conter timestamps ingênuos (CURRENT_TIMESTAMP do SQLite), booleanos
// como 0/1 ou texto e listas serializadas em JSON; tudo aqui é
// tolerante e nunca falha.

var looseLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp converte um timestamp cru do banco em time.Time
// UTC. Valores com marcador UTC ("Z" ou offset "+") são reinterpretados
// como ISO-8601; valores ingênuos ("2006-01-02 15:04:05") são tratados
// como UTC. Nunca falha: o último recurso é o instante atual.
func NormalizeTimestamp(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Now().UTC()
	}

	if strings.HasSuffix(trimmed, "Z") || strings.Contains(trimmed, "+") {
		if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return t.UTC()
		}
	} else {
		candidate := trimmed
		if !strings.Contains(candidate, "T") {
			candidate = strings.Replace(candidate, " ", "T", 1)
		}
		if t, err := time.Parse(time.RFC3339, candidate+"Z"); err == nil {
			return t.UTC()
		}
	}

	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC()
		}
	}

	return time.Now().UTC()
}

// ParseBool coage bool, 0/1 numérico ou texto ("1", "true") para bool.
// Qualquer outro valor é false.
func ParseBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case []byte:
		s := string(v)
		return s == "1" || strings.EqualFold(s, "true")
	}
	return false
}

// ParseStringArray coage um array já decodificado ou um texto JSON para
// uma lista de strings (apenas entradas string, aparadas). JSON
// malformado resulta em lista vazia, nunca em erro.
func ParseStringArray(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, strings.TrimSpace(entry))
		}
		return out
	case []any:
		return filterStrings(v)
	case string:
		return parseJSONArray([]byte(v))
	case []byte:
		return parseJSONArray(v)
	}
	return []string{}
}

func parseJSONArray(data []byte) []string {
	var decoded []any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return []string{}
	}
	return filterStrings(decoded)
}

func filterStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, entry := range values {
		if s, ok := entry.(string); ok {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// StringifyList serializa a lista para JSON, retornando nil para lista
// ausente (nunca o texto "null")
func StringifyList(values []string) *string {
	if values == nil {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}

	s := string(data)
	return &s
}

// Timestamp é um time.Time que aceita na leitura tanto time.Time quanto
// os timestamps textuais do banco, sempre normalizados para UTC
type Timestamp time.Time

// Now retorna o instante atual como Timestamp UTC
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

// Time retorna o valor como time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp(time.Time{})
	case time.Time:
		*t = Timestamp(v.UTC())
	case string:
		*t = Timestamp(NormalizeTimestamp(v))
	case []byte:
		*t = Timestamp(NormalizeTimestamp(string(v)))
	default:
		*t = Timestamp(time.Now().UTC())
	}
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	return time.Time(t).UTC(), nil
}

func (Timestamp) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "timestamptz"
	}
	return "datetime"
}

// LooseBool é um bool que aceita na leitura as formas 0/1 e textuais
type LooseBool bool

func (b *LooseBool) Scan(src any) error {
	*b = LooseBool(ParseBool(src))
	return nil
}

func (b LooseBool) Value() (driver.Value, error) {
	return bool(b), nil
}

func (LooseBool) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "boolean"
}

// StringList é uma lista de strings persistida como texto JSON
type StringList []string

func (s *StringList) Scan(src any) error {
	*s = StringList(ParseStringArray(src))
	return nil
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}
