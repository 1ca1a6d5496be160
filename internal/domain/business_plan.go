// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/partner-plan-api/internal/planning"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BusinessPlanStatus string

const (
	BusinessPlanStatusDraft     BusinessPlanStatus = "draft"
	BusinessPlanStatusActive    BusinessPlanStatus = "active"
	BusinessPlanStatusCompleted BusinessPlanStatus = "completed"
	BusinessPlanStatusArchived  BusinessPlanStatus = "archived"
)

func (s BusinessPlanStatus) IsValid() bool {
	switch s {
	case BusinessPlanStatusDraft, BusinessPlanStatusActive, BusinessPlanStatusCompleted, BusinessPlanStatusArchived:
		return true
	}
	return false
}

// KPIs são as metas leves dos três primeiros meses da parceria
type KPIs struct {
	Meetings  int `json:"meetings"`
	Trainings int `json:"trainings"`
	Pipeline  int `json:"pipeline"`
}

// Value serializa os KPIs para a coluna JSONB
func (k KPIs) Value() (driver.Value, error) {
	return json.Marshal(k)
}

// Scan lê os KPIs da coluna JSONB
func (k *KPIs) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*k = KPIs{}
		return nil
	case []byte:
		return json.Unmarshal(v, k)
	case string:
		return json.Unmarshal([]byte(v), k)
	default:
		return fmt.Errorf("kpis: tipo não suportado %T", src)
	}
}

// BusinessPlan guarda apenas as entradas do plano; os valores derivados
// são recalculados a cada leitura.
type BusinessPlan struct {
	ID            string                 `json:"id"`
	Reference     string                 `json:"reference"`
	Title         string                 `json:"title"`
	CompanyID     string                 `json:"company_id"`
	PartnerID     string                 `json:"partner_id"`
	PartnerName   string                 `json:"partner_name"`
	StartDate     time.Time              `json:"start_date"`
	EndDate       time.Time              `json:"end_date"`
	Status        BusinessPlanStatus     `json:"status"`
	NetNewIACV    float64                `json:"net_new_iacv"`
	SalesMetrics  planning.ChannelRates  `json:"sales_metrics"`
	Costs         planning.CostBreakdown `json:"costs"`
	Contributions planning.Contributions `json:"contributions"`
	Commissions   planning.Commissions   `json:"commissions"`
	ContractTerms string                 `json:"contract_terms"`
	ExitClauses   string                 `json:"exit_clauses"`
	KPIs          KPIs                   `json:"kpis"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// BusinessPlanInput é o corpo recebido do formulário do plano
type BusinessPlanInput struct {
	Title         string                 `json:"title"`
	CompanyID     string                 `json:"company_id"`
	PartnerID     string                 `json:"partner_id"`
	PartnerName   string                 `json:"partner_name"`
	StartDate     string                 `json:"start_date"` // Formato yyyy-mm-dd
	EndDate       string                 `json:"end_date"`   // Formato yyyy-mm-dd
	Status        BusinessPlanStatus     `json:"status"`
	NetNewIACV    float64                `json:"net_new_iacv"`
	SalesMetrics  planning.ChannelRates  `json:"sales_metrics"`
	Costs         planning.CostBreakdown `json:"costs"`
	Contributions planning.Contributions `json:"contributions"`
	Commissions   planning.Commissions   `json:"commissions"`
	ContractTerms string                 `json:"contract_terms"`
	ExitClauses   string                 `json:"exit_clauses"`
	KPIs          KPIs                   `json:"kpis"`
}

type BusinessPlanFilter struct {
	Status []BusinessPlanStatus
}

// BusinessPlanView é o plano com o funil e o demonstrativo recalculados
type BusinessPlanView struct {
	Plan       *BusinessPlan                 `json:"plan"`
	Funnel     *planning.FunnelPlan          `json:"funnel"`
	ProfitLoss *planning.ProfitLossStatement `json:"profit_loss"`
}

type UpdateBusinessPlanStatusRequest struct {
	Status BusinessPlanStatus `json:"status"`
}
