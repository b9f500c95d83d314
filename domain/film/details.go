package film

import "videorental/domain/shared"

// Details is the descriptive bundle attached to a film, persisted as a
// schema-less JSON blob next to the relational columns. It is immutable
// and compares by full structural equality; the actor list preserves
// order and may be empty.
type Details struct {
	actors   []string
	synopsis string
	genre    string
	duration int
	rating   string
	language string
	country  string
}

// NewDetails builds the bundle. A nil actor list becomes an empty one.
func NewDetails(actors []string, synopsis, genre string, duration int, rating, language, country string) Details {
	copied := make([]string, len(actors))
	copy(copied, actors)
	return Details{
		actors:   copied,
		synopsis: synopsis,
		genre:    genre,
		duration: duration,
		rating:   rating,
		language: language,
		country:  country,
	}
}

// Actors returns a copy of the actor list.
func (d Details) Actors() []string {
	actors := make([]string, len(d.actors))
	copy(actors, d.actors)
	return actors
}

func (d Details) Synopsis() string { return d.synopsis }
func (d Details) Genre() string    { return d.genre }
func (d Details) Duration() int    { return d.duration }
func (d Details) Rating() string   { return d.rating }
func (d Details) Language() string { return d.language }
func (d Details) Country() string  { return d.country }

// Equals compares field by field, actor order included.
func (d Details) Equals(other interface{}) bool {
	o, ok := other.(Details)
	if !ok {
		return false
	}
	if len(d.actors) != len(o.actors) {
		return false
	}
	for i := range d.actors {
		if d.actors[i] != o.actors[i] {
			return false
		}
	}
	return d.synopsis == o.synopsis &&
		d.genre == o.genre &&
		d.duration == o.duration &&
		d.rating == o.rating &&
		d.language == o.language &&
		d.country == o.country
}

var _ shared.ValueObject = Details{}
