package repository

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"bizdocs/models"
)

const companyKey = "company"

type CompanyRepository interface {
	GetCompany() (*models.CompanyProfile, error)
	SaveCompany(c *models.CompanyProfile) error
}

// BlobCompanyRepo keeps the single company profile under its own blob key.
type BlobCompanyRepo struct {
	Blob BlobRepository
}

func NewCompanyRepo(blob BlobRepository) *BlobCompanyRepo {
	return &BlobCompanyRepo{Blob: blob}
}

// GetCompany returns the saved profile, or the bootstrap default when none
// has been saved yet. A read failure also degrades to the default.
func (r *BlobCompanyRepo) GetCompany() (*models.CompanyProfile, error) {
	data, err := r.Blob.Get(companyKey)
	if err != nil {
		log.Warn().Err(err).Msg("loading company profile failed, using defaults")
		return models.DefaultCompanyProfile(), nil
	}
	if len(data) == 0 {
		return models.DefaultCompanyProfile(), nil
	}

	var c models.CompanyProfile
	if err := json.Unmarshal(data, &c); err != nil {
		log.Warn().Err(err).Msg("decoding company profile failed, using defaults")
		return models.DefaultCompanyProfile(), nil
	}
	return &c, nil
}

func (r *BlobCompanyRepo) SaveCompany(c *models.CompanyProfile) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.Blob.Put(companyKey, data)
}
