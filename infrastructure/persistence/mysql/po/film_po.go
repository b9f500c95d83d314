package po

import (
	"time"

	"videorental/domain/film"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FilmPO Film persistence object
// The details column is a JSON document so genre and actor filters can
// use JSON_EXTRACT without a join table.
type FilmPO struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:255;index;not null"`
	Director  string    `gorm:"size:255;index;not null"`
	Year      int       `gorm:"index;not null"`
	Details   string    `gorm:"type:json"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (FilmPO) TableName() string {
	return "films"
}

// filmDetailsJSON is the stored shape of the details document.
type filmDetailsJSON struct {
	Actors   []string `json:"actors"`
	Synopsis string   `json:"synopsis"`
	Genre    string   `json:"genre"`
	Duration int      `json:"duration"`
	Rating   string   `json:"rating"`
	Language string   `json:"language"`
	Country  string   `json:"country"`
}

// FromFilmDomain Convert domain model to persistence object
func FromFilmDomain(f *film.Film) (*FilmPO, error) {
	details := f.Details()
	raw, err := json.Marshal(filmDetailsJSON{
		Actors:   details.Actors(),
		Synopsis: details.Synopsis(),
		Genre:    details.Genre(),
		Duration: details.Duration(),
		Rating:   details.Rating(),
		Language: details.Language(),
		Country:  details.Country(),
	})
	if err != nil {
		return nil, err
	}
	return &FilmPO{
		ID:        f.ID(),
		Name:      f.Name(),
		Director:  f.Director(),
		Year:      f.Year(),
		Details:   string(raw),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}, nil
}

// ToDomain Convert persistence object to domain model
func (po *FilmPO) ToDomain() (*film.Film, error) {
	id, err := film.ParseID(po.ID)
	if err != nil {
		return nil, err
	}
	var details filmDetailsJSON
	if po.Details != "" {
		if err := json.Unmarshal([]byte(po.Details), &details); err != nil {
			return nil, err
		}
	}
	return film.RebuildFromDTO(film.ReconstructionDTO{
		ID:       id,
		Name:     po.Name,
		Director: po.Director,
		Year:     po.Year,
		Details: film.NewDetails(details.Actors, details.Synopsis, details.Genre,
			details.Duration, details.Rating, details.Language, details.Country),
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}), nil
}
