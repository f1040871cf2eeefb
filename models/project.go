package models

import (
	"errors"
	"strconv"
	"time"
)

type ProjectStage string

const (
	StagePlanning    ProjectStage = "PLANNING"
	StageDesign      ProjectStage = "DESIGN"
	StageDevelopment ProjectStage = "DEVELOPMENT"
	StageTesting     ProjectStage = "TESTING"
	StageDeployment  ProjectStage = "DEPLOYMENT"
	StageCompleted   ProjectStage = "COMPLETED"
)

func (s ProjectStage) Valid() bool {
	switch s {
	case StagePlanning, StageDesign, StageDevelopment, StageTesting, StageDeployment, StageCompleted:
		return true
	}
	return false
}

type ProjectStatus string

const (
	StatusWaitingForApprove ProjectStatus = "WAITING_FOR_APPROVE"
	StatusApproved          ProjectStatus = "APPROVED"
	StatusRejected          ProjectStatus = "REJECTED"
	StatusInProgress        ProjectStatus = "IN_PROGRESS"
	StatusOnHold            ProjectStatus = "ON_HOLD"
	StatusCompleted         ProjectStatus = "COMPLETED"
	StatusCancelled         ProjectStatus = "CANCELLED"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusWaitingForApprove, StatusApproved, StatusRejected, StatusInProgress,
		StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project belongs to exactly one User. Monetary fields are kept as decimal
// strings; PaymentIDs is a '|'-delimited append-only list that moves in
// lockstep with PaidAmount.
type Project struct {
	ID             string        `json:"id"`
	Username       string        `json:"username"`
	ProjectName    string        `json:"project_name"`
	ProjectDetails string        `json:"project_details"`
	ProjectValue   string        `json:"project_value"`
	PaidAmount     string        `json:"paid_amount"`
	RefundAmount   string        `json:"refund_amount"`
	PaymentIDs     string        `json:"payment_ids"`
	ProjectStage   ProjectStage  `json:"project_stage"`
	ProjectStatus  ProjectStatus `json:"project_status"`
	Email          string        `json:"email"`
	Mobile         string        `json:"mobile"`
	Address        string        `json:"address"`
	StartDate      time.Time     `json:"start_date"`
	UserID         string        `json:"-"`
}

// ApplyPayment records one accepted payment. The first payment replaces the
// empty markers; later ones append the id and add the amount.
func (p *Project) ApplyPayment(amount, paymentID string) error {
	added, err := strconv.Atoi(amount)
	if err != nil {
		return errors.New("payment amount must be an integer")
	}
	if p.PaymentIDs == "" {
		p.PaymentIDs = paymentID
		p.PaidAmount = amount
		return nil
	}
	current, err := strconv.Atoi(p.PaidAmount)
	if err != nil {
		return errors.New("stored paid_amount is not an integer")
	}
	p.PaymentIDs = p.PaymentIDs + "|" + paymentID
	p.PaidAmount = strconv.Itoa(current + added)
	return nil
}
