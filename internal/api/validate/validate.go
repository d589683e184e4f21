package validate

import "strings"

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + " " + ef.Msg)
	}
	return b.String()
}

// Messages flattens the list into the wire form: one human-readable
// string per violated rule.
func (e Errs) Messages() []string {
	out := make([]string, 0, len(e))
	for _, ef := range e {
		out = append(out, ef.Field+" "+ef.Msg)
	}
	return out
}

func (e Errs) Append(ef *ErrField) Errs {
	if ef == nil {
		return e
	}
	return append(e, *ef)
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "is required"}
	}
	return nil
}
