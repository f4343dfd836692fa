package kernel

// DomainLabel identifies a career domain in the catalog.
type DomainLabel string

func (d DomainLabel) String() string { return string(d) }
func (d DomainLabel) IsEmpty() bool  { return string(d) == "" }

// Similarity is a cosine similarity in [0,1].
type Similarity float64

// Percent scales the similarity to a 0-100 display value.
func (s Similarity) Percent() float64 { return float64(s) * 100 }

// ReportPath is the storage path of a rendered career report.
type ReportPath string

func (p ReportPath) String() string { return string(p) }
func (p ReportPath) IsEmpty() bool  { return string(p) == "" }
