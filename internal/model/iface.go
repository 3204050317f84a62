package model

// Renderer presents finished reports to the user. Implementations are
// pure serialization: plain text, CSV, JSON. The pipeline never formats.
type Renderer interface {
	Render(reports []Report) error
}

// ReportSource is the read contract the HTTP API serves from. A
// completed batch run satisfies it with a static snapshot.
type ReportSource interface {
	Reports() []Report
}
