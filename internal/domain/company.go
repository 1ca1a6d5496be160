package domain

import "time"

type CompanySize string

const (
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// IsValid aceita o tamanho vazio, que significa não informado
func (s CompanySize) IsValid() bool {
	switch s {
	case "", CompanySizeSmall, CompanySizeMedium, CompanySizeLarge, CompanySizeEnterprise:
		return true
	}
	return false
}

// Company é tanto a empresa dona do plano quanto o parceiro; IsPartner separa os dois cadastros
type Company struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Logo      string      `json:"logo"`
	Website   string      `json:"website"`
	Industry  string      `json:"industry"`
	Size      CompanySize `json:"size"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	IsPartner bool        `json:"is_partner"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type CompanyInput struct {
	Name     string      `json:"name"`
	Logo     string      `json:"logo"`
	Website  string      `json:"website"`
	Industry string      `json:"industry"`
	Size     CompanySize `json:"size"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
}
