// Package raw provides a DataFetcher serving configuration text supplied
// in memory, such as the value of an inline --config flag.
package raw

// Fetcher implements config.DataFetcher interface for in-memory text.
type Fetcher struct {
	data []byte
}

// NewFetcher returns a Fetcher serving text.
func NewFetcher(text string) *Fetcher {
	return &Fetcher{data: []byte(text)}
}

// Fetch returns a copy of the text.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
