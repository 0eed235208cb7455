package openapi

import (
	"bytes"
	"encoding/json"
)

// encoding/json has no equivalent of yaml's ",inline", so every type that
// carries an Extra map needs a MarshalJSON that splices the specification
// extensions back into the emitted object. The known fields are marshaled
// through a method-free alias type, then the extension object is appended
// before the closing brace.

func marshalWithExtensions(alias any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(alias)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	ext, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	if len(data) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(ext[1:])
	return buf.Bytes(), nil
}

// MarshalJSON flattens specification extensions into the emitted object.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	return marshalWithExtensions((*alias)(d), d.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	return marshalWithExtensions((*alias)(i), i.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (c *Contact) MarshalJSON() ([]byte, error) {
	type alias Contact
	return marshalWithExtensions((*alias)(c), c.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (l *License) MarshalJSON() ([]byte, error) {
	type alias License
	return marshalWithExtensions((*alias)(l), l.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (s *Server) MarshalJSON() ([]byte, error) {
	type alias Server
	return marshalWithExtensions((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (t *Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	return marshalWithExtensions((*alias)(t), t.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (ed *ExternalDocs) MarshalJSON() ([]byte, error) {
	type alias ExternalDocs
	return marshalWithExtensions((*alias)(ed), ed.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (pi *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	return marshalWithExtensions((*alias)(pi), pi.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	return marshalWithExtensions((*alias)(o), o.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	return marshalWithExtensions((*alias)(p), p.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (rb *RequestBody) MarshalJSON() ([]byte, error) {
	type alias RequestBody
	return marshalWithExtensions((*alias)(rb), rb.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (mt *MediaType) MarshalJSON() ([]byte, error) {
	type alias MediaType
	return marshalWithExtensions((*alias)(mt), mt.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	return marshalWithExtensions((*alias)(r), r.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (h *Header) MarshalJSON() ([]byte, error) {
	type alias Header
	return marshalWithExtensions((*alias)(h), h.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (c *Components) MarshalJSON() ([]byte, error) {
	type alias Components
	return marshalWithExtensions((*alias)(c), c.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (ss *SecurityScheme) MarshalJSON() ([]byte, error) {
	type alias SecurityScheme
	return marshalWithExtensions((*alias)(ss), ss.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	return marshalWithExtensions((*alias)(s), s.Extra)
}

// MarshalJSON flattens specification extensions into the emitted object.
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	type alias Discriminator
	return marshalWithExtensions((*alias)(d), d.Extra)
}
