package paginator

// Default message texts.
const (
	defaultInvalidPageMsg = "That page number is not an integer"
	defaultMinPageMsg     = "That page number is less than 1"
	defaultNoResultsMsg   = "That page contains no results"
	defaultEllipsis       = "…"
)

// Messages holds the user-facing texts used in errors and elided ranges.
// Callers override individual fields to localize them.
type Messages struct {
	// InvalidPage is used for ErrPageNotAnInteger.
	InvalidPage string `json:"invalid_page" mapstructure:"invalid_page"`

	// MinPage is used for ErrEmptyPage when the number is below 1.
	MinPage string `json:"min_page" mapstructure:"min_page"`

	// NoResults is used for ErrEmptyPage when the number exceeds NumPages.
	NoResults string `json:"no_results" mapstructure:"no_results"`

	// Ellipsis is the label of the placeholder in elided page ranges.
	Ellipsis string `json:"ellipsis" mapstructure:"ellipsis"`
}

// DefaultMessages returns the built-in English texts.
func DefaultMessages() Messages {
	return Messages{
		InvalidPage: defaultInvalidPageMsg,
		MinPage:     defaultMinPageMsg,
		NoResults:   defaultNoResultsMsg,
		Ellipsis:    defaultEllipsis,
	}
}

// Merge returns m with every non-empty field of override applied.
func (m Messages) Merge(override Messages) Messages {
	if override.InvalidPage != "" {
		m.InvalidPage = override.InvalidPage
	}
	if override.MinPage != "" {
		m.MinPage = override.MinPage
	}
	if override.NoResults != "" {
		m.NoResults = override.NoResults
	}
	if override.Ellipsis != "" {
		m.Ellipsis = override.Ellipsis
	}
	return m
}
