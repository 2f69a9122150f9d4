package pagination

// defaultPageSize applies when a request omits the limit parameter.
const defaultPageSize = 20

// Params is embedded into listing inputs to give every paginated endpoint
// the same cursor and limit query parameters.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                          default:"20" minimum:"1" maximum:"100"`
}

// DefaultLimit returns the requested limit, or the default page size when
// the parameter was omitted.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return defaultPageSize
	}
	return p.Limit
}
