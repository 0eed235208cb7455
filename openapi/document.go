package openapi

// Document represents an OpenAPI 3.x document
// References:
// - OAS 3.0.0: https://spec.openapis.org/oas/v3.0.0.html
// - OAS 3.1.0: https://spec.openapis.org/oas/v3.1.0.html
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"` // Required: "3.0.x" or "3.1.x"
	Info         *Info                 `yaml:"info" json:"info"`       // Required
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                 `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components           `yaml:"components,omitempty" json:"components,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// JSONSchemaDialect applies to OAS 3.1+ documents only.
	JSONSchemaDialect string `yaml:"jsonSchemaDialect,omitempty" json:"jsonSchemaDialect,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Paths maps a path template to its path item.
// Keys are sorted during marshaling, so output is deterministic.
type Paths map[string]*PathItem

// Info provides metadata about the API
type Info struct {
	Title          string         `yaml:"title" json:"title"`     // Required
	Version        string         `yaml:"version" json:"version"` // Required
	Summary        string         `yaml:"summary,omitempty" json:"summary,omitempty"` // OAS 3.1+
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string         `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact       `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License       `yaml:"license,omitempty" json:"license,omitempty"`
	Extra          map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string         `yaml:"url,omitempty" json:"url,omitempty"`
	Email string         `yaml:"email,omitempty" json:"email,omitempty"`
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API
type License struct {
	Name       string         `yaml:"name" json:"name"` // Required
	Identifier string         `yaml:"identifier,omitempty" json:"identifier,omitempty"` // OAS 3.1+
	URL        string         `yaml:"url,omitempty" json:"url,omitempty"`
	Extra      map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server hosting the API
type Server struct {
	URL         string         `yaml:"url" json:"url"` // Required
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string         `yaml:"name" json:"name"` // Required
	Description  string         `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Extra        map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing an external resource for extended documentation
type ExternalDocs struct {
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string         `yaml:"url" json:"url"` // Required
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string         `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation     `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation     `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation     `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation     `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation     `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation     `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation     `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation     `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation registered under the lowercase HTTP
// method, or nil.
func (pi *PathItem) Operation(method string) *Operation {
	if pi == nil {
		return nil
	}
	switch method {
	case "get":
		return pi.Get
	case "put":
		return pi.Put
	case "post":
		return pi.Post
	case "delete":
		return pi.Delete
	case "options":
		return pi.Options
	case "head":
		return pi.Head
	case "patch":
		return pi.Patch
	case "trace":
		return pi.Trace
	}
	return nil
}

// SetOperation registers the operation under the lowercase HTTP method.
// Unknown methods are ignored and reported via the false return.
func (pi *PathItem) SetOperation(method string, op *Operation) bool {
	switch method {
	case "get":
		pi.Get = op
	case "put":
		pi.Put = op
	case "post":
		pi.Post = op
	case "delete":
		pi.Delete = op
	case "options":
		pi.Options = op
	case "head":
		pi.Head = op
	case "patch":
		pi.Patch = op
	case "trace":
		pi.Trace = op
	default:
		return false
	}
	return true
}

// Methods is the fixed ordering of HTTP methods used when enumerating a
// path item's operations.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated   bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Extra        map[string]any        `yaml:",inline" json:"-"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Ref             string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name            string         `yaml:"name,omitempty" json:"name,omitempty"`
	In              string         `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description     string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required        bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated      bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	AllowEmptyValue bool           `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Style           string         `yaml:"style,omitempty" json:"style,omitempty"`
	Explode         *bool          `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema          *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example         any            `yaml:"example,omitempty" json:"example,omitempty"`
	Extra           map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema  *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any            `yaml:"example,omitempty" json:"example,omitempty"`
	Extra   map[string]any `yaml:",inline" json:"-"`
}

// Response describes a single response from an API operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// Header follows the structure of Parameter with location fixed to "header"
type Header struct {
	Ref         string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects for different aspects of the OAS
type Components struct {
	Schemas         *SchemaMap                 `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	Extra           map[string]any             `yaml:",inline" json:"-"`
}

// SecurityRequirement lists required security schemes for an operation.
// Each name must correspond to a declared security scheme; the value lists
// required scopes (empty for non-OAuth2 schemes).
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by operations
type SecurityScheme struct {
	Ref         string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type        string         `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect"
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"` // apiKey
	In          string         `yaml:"in,omitempty" json:"in,omitempty"`     // apiKey: "query", "header", "cookie"
	Scheme      string         `yaml:"scheme,omitempty" json:"scheme,omitempty"` // http: "basic", "bearer", ...
	BearerFormat string        `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}
