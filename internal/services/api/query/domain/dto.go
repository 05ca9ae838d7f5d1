// Package domain holds DTOs for the query preview http and service contracts
package domain

// Kind names one endpoint template
type Kind string

// Kind values, one per endpoint template
const (
	KindMetadata      Kind = "metadata"
	KindMetadataList  Kind = "metadata-list"
	KindResource      Kind = "resource"
	KindResourcePage  Kind = "resource-page"
	KindResourceAbout Kind = "resource-about"
	KindResourceDocs  Kind = "resource-docs"
	KindQuery         Kind = "query"
	KindCategory      Kind = "category"
	KindRevision      Kind = "revision"
	KindUpload        Kind = "upload"
	KindSource        Kind = "source"
	KindApply         Kind = "apply"
	KindJob           Kind = "job"
)

// Kinds lists every supported kind in documentation order
func Kinds() []Kind {
	return []Kind{
		KindMetadata, KindMetadataList,
		KindResource, KindResourcePage, KindResourceAbout, KindResourceDocs,
		KindQuery, KindCategory,
		KindRevision, KindUpload, KindSource, KindApply, KindJob,
	}
}

// RowQuery describes a row query; every clause is optional
type RowQuery struct {
	Select    []string `json:"select,omitempty"    validate:"omitempty,max=500,dive,required" example:"name,count(*)"`
	Where     string   `json:"where,omitempty"     validate:"omitempty,max=4096" example:"age > 21"`
	Group     []string `json:"group,omitempty"     validate:"omitempty,max=100,dive,required"`
	Having    string   `json:"having,omitempty"    validate:"omitempty,max=4096"`
	Order     []string `json:"order,omitempty"     validate:"omitempty,max=100,dive,required"`
	Direction string   `json:"direction,omitempty" example:"desc"`
	Limit     *int     `json:"limit,omitempty"     example:"50"`
	Offset    *int     `json:"offset,omitempty"    example:"100"`
	Search    string   `json:"q,omitempty"         validate:"omitempty,max=1024"`
}

// QueryResponse is the rendered row query string
type QueryResponse struct {
	Query string `json:"query" example:"$select=*&$limit=50"`
}

// URIRequest carries the arguments of every endpoint kind; each kind reads only what it needs
type URIRequest struct {
	Host         string    `json:"host"                    validate:"required,max=253" example:"data.example.org"`
	ID           string    `json:"id,omitempty"            example:"abcd-1234"`
	RowID        string    `json:"row_id,omitempty"        validate:"omitempty,max=256"`
	Page         *int      `json:"page,omitempty"          example:"1"`
	Category     string    `json:"category,omitempty"      validate:"omitempty,max=256"`
	EndpointPath string    `json:"endpoint_path,omitempty" validate:"omitempty,max=2048" example:"/api/publishing/v1/upload/12"`
	Revision     *int64    `json:"revision,omitempty"      example:"3"`
	Query        *RowQuery `json:"query,omitempty"`
}

// URIResponse is one rendered endpoint URI
type URIResponse struct {
	Kind Kind   `json:"kind" example:"query"`
	URI  string `json:"uri"  example:"https://data.example.org/resource/abcd-1234?$select=*"`
}

// CatalogRequest describes a discovery search
type CatalogRequest struct {
	Location       string            `json:"location,omitempty"        validate:"omitempty,oneof=us na north_america eu europe" example:"us"`
	SearchContext  string            `json:"search_context,omitempty"  validate:"omitempty,max=253"`
	Q              string            `json:"q,omitempty"               validate:"omitempty,max=1024" example:"crime"`
	IDs            []string          `json:"ids,omitempty"`
	Domains        []string          `json:"domains,omitempty"         validate:"omitempty,dive,required,max=253"`
	Categories     []string          `json:"categories,omitempty"      validate:"omitempty,dive,required"`
	Tags           []string          `json:"tags,omitempty"            validate:"omitempty,dive,required"`
	Types          []string          `json:"only,omitempty"            validate:"omitempty,dive,oneof=api calendar chart datalens dataset file filter form href link map measure story visualization"`
	Attributions   []string          `json:"attribution,omitempty"     validate:"omitempty,dive,required"`
	Licenses       []string          `json:"license,omitempty"         validate:"omitempty,dive,required"`
	ParentIDs      []string          `json:"derived_from,omitempty"    validate:"omitempty,dive,fourbyfour"`
	OwnerIDs       []string          `json:"for_user,omitempty"        validate:"omitempty,dive,fourbyfour"`
	SharedTo       []string          `json:"shared_to,omitempty"       validate:"omitempty,dive,required"`
	ColumnNames    []string          `json:"column_names,omitempty"    validate:"omitempty,dive,required"`
	ApprovalStatus []string          `json:"approval_status,omitempty" validate:"omitempty,dive,oneof=approved pending rejected not_ready"`
	Provenance     string            `json:"provenance,omitempty"      validate:"omitempty,oneof=official community"`
	Visibility     string            `json:"visibility,omitempty"      validate:"omitempty,oneof=open internal"`
	Public         *bool             `json:"public,omitempty"`
	Published      *bool             `json:"published,omitempty"`
	Hidden         *bool             `json:"explicitly_hidden,omitempty"`
	Derived        *bool             `json:"derived,omitempty"`
	SortAscending  []string          `json:"order_asc,omitempty"       validate:"omitempty,dive,required"`
	SortDescending []string          `json:"order_desc,omitempty"      validate:"omitempty,dive,required"`
	BoostOfficial  float64           `json:"boost_official,omitempty"  example:"1.5"`
	Limit          *int              `json:"limit,omitempty"           example:"20"`
	Offset         *int              `json:"offset,omitempty"`
	ScrollID       string            `json:"scroll_id,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"        validate:"omitempty,dive,keys,required,endkeys,required"`
}

// CatalogResponse is the rendered discovery URI and its query string
type CatalogResponse struct {
	URI   string `json:"uri"   example:"https://api.us.socrata.com/api/catalog/v1?q=crime"`
	Query string `json:"query" example:"q=crime"`
}
