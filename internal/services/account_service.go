package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type AccountService struct {
	accountRepo repositories.AccountRepository
	notifier    *NotificationService
}

func NewAccountService(accountRepo repositories.AccountRepository, notifier *NotificationService) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

func (s *AccountService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, account *models.Account, req dtos.UpdateProfileRequest) (*models.Account, error) {
	account.Name = req.Name
	account.Phone = req.Phone
	account.AvatarURL = req.AvatarURL
	account.LogoURL = req.LogoURL
	account.Bio = req.Bio
	account.Facebook = req.Facebook
	account.Instagram = req.Instagram
	account.Website = req.Website
	account.Province = req.Province
	account.City = req.City

	if err := s.accountRepo.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// RequestAgent moves an eligible account to PENDING. Eligible means the
// account is a plain client or a previously rejected applicant; approved,
// suspended and already-pending accounts cannot apply.
func (s *AccountService) RequestAgent(ctx context.Context, account *models.Account, req dtos.AgentRequestRequest) error {
	standing, err := account.Standing()
	if err != nil {
		return err
	}
	switch standing {
	case models.StandingClient, models.StandingRejectedAgent:
		// eligible
	default:
		return utils.ErrInvalidTransition
	}

	if !utils.ValidDocument(req.DocumentNumber) {
		return utils.ErrInvalidDocument
	}
	inUse, err := s.accountRepo.DocumentInUse(ctx, req.DocumentNumber, account.ID)
	if err != nil {
		return err
	}
	if inUse {
		return utils.ErrDuplicateDocument
	}

	if err := s.accountRepo.SetAgentRequest(ctx, account.ID, req.Phone, req.Bio, req.DocumentNumber); err != nil {
		return err
	}

	s.notifier.NotifyAdmins(ctx, models.NotificationInfo,
		fmt.Sprintf("%s has requested to become an agent", account.Name), nil)
	utils.Logger.WithField("account_id", account.ID).Info("Agent request submitted")
	return nil
}

// DecideAgentRequest resolves a PENDING request. Approve promotes the
// account to an approved agent; reject returns it to client standing with
// the rejection recorded.
func (s *AccountService) DecideAgentRequest(ctx context.Context, accountID uuid.UUID, approve bool) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	standing, err := account.Standing()
	if err != nil {
		return err
	}
	if standing != models.StandingPendingAgent {
		return utils.ErrInvalidTransition
	}

	if approve {
		if err := s.accountRepo.SetStanding(ctx, accountID, models.StandingApprovedAgent); err != nil {
			return err
		}
		s.notifier.Notify(ctx, accountID, models.NotificationSuccess,
			"Your agent request was approved. You can now publish listings.", nil)
	} else {
		if err := s.accountRepo.SetStanding(ctx, accountID, models.StandingRejectedAgent); err != nil {
			return err
		}
		s.notifier.Notify(ctx, accountID, models.NotificationError,
			"Your agent request was rejected. You may apply again.", nil)
	}

	utils.Logger.WithFields(map[string]interface{}{
		"account_id": accountID,
		"approved":   approve,
	}).Info("Agent request decided")
	return nil
}

// SuspendAgent blocks an approved agent. Their listings drop out of the
// public catalog immediately because the catalog query checks owner
// standing live.
func (s *AccountService) SuspendAgent(ctx context.Context, accountID uuid.UUID, reason string) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	standing, err := account.Standing()
	if err != nil {
		return err
	}
	if standing != models.StandingApprovedAgent {
		return utils.ErrInvalidTransition
	}

	if err := s.accountRepo.SetStanding(ctx, accountID, models.StandingSuspendedAgent); err != nil {
		return err
	}

	msg := "Your agent account has been suspended."
	if reason != "" {
		msg = fmt.Sprintf("Your agent account has been suspended: %s", reason)
	}
	s.notifier.Notify(ctx, accountID, models.NotificationWarning, msg, nil)
	utils.Logger.WithField("account_id", accountID).Info("Agent suspended")
	return nil
}

// ReactivateAgent restores a suspended agent to approved standing.
func (s *AccountService) ReactivateAgent(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	standing, err := account.Standing()
	if err != nil {
		return err
	}
	if standing != models.StandingSuspendedAgent {
		return utils.ErrInvalidTransition
	}

	if err := s.accountRepo.SetStanding(ctx, accountID, models.StandingApprovedAgent); err != nil {
		return err
	}

	s.notifier.Notify(ctx, accountID, models.NotificationSuccess,
		"Your agent account has been reactivated.", nil)
	utils.Logger.WithField("account_id", accountID).Info("Agent reactivated")
	return nil
}

func (s *AccountService) ListAgentRequests(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListAgentRequests(ctx)
}

func (s *AccountService) ListAgents(ctx context.Context) ([]*models.AgentOverview, error) {
	return s.accountRepo.ListAgents(ctx)
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.accountRepo.Delete(ctx, id)
}
