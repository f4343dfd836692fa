package kernel

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }

// Short returns the first 8 characters of the session ID, used when
// deriving report file names.
func (s SessionID) Short() string {
	if len(s) <= 8 {
		return string(s)
	}
	return string(s)[:8]
}

type ExtractionJobID string

func NewExtractionJobID(id string) ExtractionJobID { return ExtractionJobID(id) }
func (j ExtractionJobID) String() string           { return string(j) }
func (j ExtractionJobID) IsEmpty() bool            { return string(j) == "" }
