package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/usecase/dashboard"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/notification"
	"github.com/simaogato/kirimuang-backend/internal/usecase/preferences"
	"github.com/simaogato/kirimuang-backend/internal/usecase/profile"
	"github.com/simaogato/kirimuang-backend/internal/usecase/rates"
	"github.com/simaogato/kirimuang-backend/internal/usecase/wizard"
)

// Server implements the RemittanceService gRPC server
type Server struct {
	Wizards          *wizard.Manager
	RateService      *rates.Service
	HistoryService   *history.HistoryService
	DashboardService *dashboard.DashboardService
	Preferences      *preferences.Service
	ProfileService   *profile.Service
}

var _ RemittanceServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	wizards *wizard.Manager,
	rateService *rates.Service,
	historyService *history.HistoryService,
	dashboardService *dashboard.DashboardService,
	prefs *preferences.Service,
	profileService *profile.Service,
) *Server {
	return &Server{
		Wizards:          wizards,
		RateService:      rateService,
		HistoryService:   historyService,
		DashboardService: dashboardService,
		Preferences:      prefs,
		ProfileService:   profileService,
	}
}

// StartTransfer handles the StartTransfer RPC
func (s *Server) StartTransfer(ctx context.Context, req *StartTransferRequest) (*TransferState, error) {
	lang, err := s.language(ctx, req.Language)
	if err != nil {
		return nil, err
	}

	w, err := s.Wizards.Start(ctx, lang)
	if err != nil {
		return nil, mapError(err)
	}
	return domainStateToProto(w.State()), nil
}

// SetTransferField handles the SetTransferField RPC
func (s *Server) SetTransferField(ctx context.Context, req *SetTransferFieldRequest) (*TransferState, error) {
	w, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	state, err := w.SetField(domain.Field(req.Field), req.Value)
	if err != nil {
		return nil, mapError(err)
	}
	return domainStateToProto(state), nil
}

// NextStep handles the NextStep RPC.
// A blocked transition is not an RPC error: the state comes back with its field errors.
func (s *Server) NextStep(ctx context.Context, req *SessionRequest) (*TransferState, error) {
	w, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	state, err := w.Next()
	if _, invalid := wizard.IsValidation(err); err != nil && !invalid {
		return nil, mapError(err)
	}
	return domainStateToProto(state), nil
}

// PreviousStep handles the PreviousStep RPC
func (s *Server) PreviousStep(ctx context.Context, req *SessionRequest) (*TransferState, error) {
	w, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	state, err := w.Back()
	if err != nil {
		return nil, mapError(err)
	}
	return domainStateToProto(state), nil
}

// SubmitTransfer handles the SubmitTransfer RPC. It blocks until the payment backend answers.
func (s *Server) SubmitTransfer(ctx context.Context, req *SessionRequest) (*TransferState, error) {
	w, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	state, err := w.Submit(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return domainStateToProto(state), nil
}

// GetTransfer handles the GetTransfer RPC
func (s *Server) GetTransfer(ctx context.Context, req *SessionRequest) (*TransferState, error) {
	w, err := s.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return domainStateToProto(w.State()), nil
}

// EndTransfer handles the EndTransfer RPC
func (s *Server) EndTransfer(ctx context.Context, req *SessionRequest) (*Empty, error) {
	if req.SessionId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "session_id is required")
	}
	if err := s.Wizards.End(req.SessionId); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// GetExchangeRate handles the GetExchangeRate RPC
func (s *Server) GetExchangeRate(ctx context.Context, req *Empty) (*ExchangeRate, error) {
	snap, err := s.RateService.Latest(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return domainRateToProto(snap), nil
}

// RefreshExchangeRate handles the RefreshExchangeRate RPC
func (s *Server) RefreshExchangeRate(ctx context.Context, req *RefreshExchangeRateRequest) (*ExchangeRate, error) {
	lang, err := s.language(ctx, req.Language)
	if err != nil {
		return nil, err
	}

	snap, err := s.RateService.ManualRefresh(ctx, lang)
	if err != nil {
		return nil, mapError(err)
	}
	return domainRateToProto(snap), nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	transactions, err := s.HistoryService.List(ctx, history.Filter{Query: req.Query, Status: req.Status})
	if err != nil {
		return nil, mapError(err)
	}

	return &ListTransactionsResponse{
		Transactions: domainTransactionsToProto(transactions),
		TotalCount:   int32(len(transactions)),
	}, nil
}

// GetReceipt handles the GetReceipt RPC
func (s *Server) GetReceipt(ctx context.Context, req *GetReceiptRequest) (*GetReceiptResponse, error) {
	if req.TransactionId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "transaction_id is required")
	}
	lang, err := s.language(ctx, req.Language)
	if err != nil {
		return nil, err
	}

	receipt, err := s.HistoryService.Receipt(ctx, req.TransactionId, lang)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetReceiptResponse{
		FileName:    receipt.FileName,
		ContentType: receipt.ContentType,
		Content:     string(receipt.Body),
	}, nil
}

// GetDashboard handles the GetDashboard RPC
func (s *Server) GetDashboard(ctx context.Context, req *GetDashboardRequest) (*GetDashboardResponse, error) {
	result, err := s.DashboardService.GetSummary(ctx, req.ShowBalance)
	if err != nil {
		return nil, mapError(err)
	}

	return &GetDashboardResponse{
		ExchangeRate:    domainRateToProto(result.Rate),
		Recent:          domainTransactionsToProto(result.Recent),
		Balance:         result.Balance,
		BalanceVisible:  result.BalanceVisible,
		NeedsOnboarding: result.NeedsOnboarding,
		Language:        string(result.Language),
	}, nil
}

// ListNotifications handles the ListNotifications RPC
func (s *Server) ListNotifications(ctx context.Context, req *Empty) (*ListNotificationsResponse, error) {
	list := notification.FromContext(ctx).List()

	out := make([]*Notification, 0, len(list))
	for _, n := range list {
		out = append(out, domainNotificationToProto(n))
	}
	return &ListNotificationsResponse{Notifications: out}, nil
}

// DismissNotification handles the DismissNotification RPC
func (s *Server) DismissNotification(ctx context.Context, req *NotificationRequest) (*Empty, error) {
	center := notification.FromContext(ctx)
	if _, err := center.Get(req.Id); err != nil {
		return nil, mapError(err)
	}
	center.Remove(req.Id)
	return &Empty{}, nil
}

// InvokeNotificationAction handles the InvokeNotificationAction RPC
func (s *Server) InvokeNotificationAction(ctx context.Context, req *NotificationRequest) (*Empty, error) {
	if err := notification.FromContext(ctx).InvokeAction(req.Id); err != nil {
		return nil, mapError(err)
	}
	return &Empty{}, nil
}

// GetPreferences handles the GetPreferences RPC
func (s *Server) GetPreferences(ctx context.Context, req *Empty) (*Preferences, error) {
	return s.preferences(ctx)
}

// UpdatePreferences handles the UpdatePreferences RPC
func (s *Server) UpdatePreferences(ctx context.Context, req *UpdatePreferencesRequest) (*Preferences, error) {
	if req.Language != "" {
		if err := s.Preferences.SetLanguage(ctx, domain.Language(req.Language)); err != nil {
			return nil, mapError(err)
		}
	}
	if req.Theme != "" {
		if err := s.Preferences.SetTheme(ctx, domain.Theme(req.Theme)); err != nil {
			return nil, mapError(err)
		}
	}
	if req.CompleteOnboarding {
		if err := s.Preferences.CompleteOnboarding(ctx); err != nil {
			return nil, mapError(err)
		}
	}
	return s.preferences(ctx)
}

// GetProfile handles the GetProfile RPC
func (s *Server) GetProfile(ctx context.Context, req *Empty) (*Profile, error) {
	return s.profile(ctx, s.ProfileService.Get())
}

// UpdateProfile handles the UpdateProfile RPC
func (s *Server) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*Profile, error) {
	if req.Settings != nil {
		s.ProfileService.UpdateNotificationSettings(domain.NotificationSettings{
			Email:     req.Settings.Email,
			Push:      req.Settings.Push,
			SMS:       req.Settings.SMS,
			Marketing: req.Settings.Marketing,
		})
	}

	p := s.ProfileService.Get()
	if req.Field != "" {
		var err error
		p, err = s.ProfileService.UpdateField(domain.ProfileField(req.Field), req.Value)
		if err != nil {
			return nil, mapError(err)
		}
	}
	return s.profile(ctx, p)
}

func (s *Server) session(id string) (*wizard.Wizard, error) {
	if id == "" {
		return nil, status.Errorf(codes.InvalidArgument, "session_id is required")
	}
	w, err := s.Wizards.Get(id)
	if err != nil {
		return nil, mapError(err)
	}
	return w, nil
}

// language resolves an explicit request language, falling back to the stored preference
func (s *Server) language(ctx context.Context, requested string) (domain.Language, error) {
	if requested == "" {
		lang, err := s.Preferences.Language(ctx)
		if err != nil {
			return "", mapError(err)
		}
		return lang, nil
	}

	lang := domain.Language(requested)
	if !lang.Valid() {
		return "", status.Errorf(codes.InvalidArgument, "unsupported language %q", requested)
	}
	return lang, nil
}

func (s *Server) preferences(ctx context.Context) (*Preferences, error) {
	lang, err := s.Preferences.Language(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	theme, err := s.Preferences.Theme(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	done, err := s.Preferences.OnboardingCompleted(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	route, err := s.Preferences.StartRoute(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &Preferences{
		Language:            string(lang),
		Theme:               string(theme),
		OnboardingCompleted: done,
		StartRoute:          string(route),
	}, nil
}

func (s *Server) profile(ctx context.Context, p domain.UserProfile) (*Profile, error) {
	stats, err := s.ProfileService.Stats(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	settings := s.ProfileService.NotificationSettings()

	return &Profile{
		Name:     p.Name,
		Initials: p.Initials(),
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
		JoinedAt: timestamppb.New(p.JoinedAt),
		Settings: &NotificationSettings{
			Email:     settings.Email,
			Push:      settings.Push,
			SMS:       settings.SMS,
			Marketing: settings.Marketing,
		},
		TotalTransactions: int32(stats.TotalTransactions),
		TotalSent:         stats.TotalSent.StringFixed(2),
	}, nil
}

// domainStateToProto converts a wizard state to the wire message
func domainStateToProto(state wizard.State) *TransferState {
	errs := make(map[string]string, len(state.Errors))
	for field, msg := range state.Errors {
		errs[string(field)] = msg
	}

	return &TransferState{
		SessionId:  state.SessionID,
		Language:   string(state.Language),
		Step:       state.Step.String(),
		StepNumber: int32(state.Step),
		Draft: &TransferDraft{
			Amount:         state.Draft.Amount,
			RecipientName:  state.Draft.RecipientName,
			RecipientPhone: state.Draft.RecipientPhone,
			BankName:       state.Draft.BankName,
			AccountNumber:  state.Draft.AccountNumber,
		},
		Errors: errs,
		Quote: &Quote{
			Amount:        state.Quote.Amount.StringFixed(2),
			Fee:           state.Quote.Fee.StringFixed(2),
			Total:         state.Quote.Total.StringFixed(2),
			Rate:          state.Quote.Rate.String(),
			ReceiveAmount: state.Quote.ReceiveAmount.StringFixed(0),
		},
		Submitting:        state.Submitting,
		LastTransactionId: state.LastTransactionID,
		Route:             string(state.Route),
	}
}

// domainRateToProto converts a rate snapshot to the wire message
func domainRateToProto(snap domain.ExchangeRateSnapshot) *ExchangeRate {
	return &ExchangeRate{
		Rate:          snap.Rate.String(),
		ChangePercent: snap.ChangePercent.String(),
		CapturedAt:    timestamppb.New(snap.CapturedAt),
		Seq:           snap.Seq,
	}
}

// domainTransactionsToProto converts history records to wire messages
func domainTransactionsToProto(transactions []*domain.Transaction) []*Transaction {
	out := make([]*Transaction, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, &Transaction{
			Id:             tx.ID,
			Amount:         tx.Amount.StringFixed(2),
			Currency:       tx.Currency,
			Recipient:      tx.Recipient,
			Bank:           tx.Bank,
			AccountNumber:  tx.AccountSuffix,
			Status:         string(tx.Status),
			Date:           timestamppb.New(tx.Date),
			Fee:            tx.Fee.StringFixed(2),
			ExchangeRate:   tx.ExchangeRate.String(),
			ReceivedAmount: tx.ReceivedAmount.StringFixed(0),
			FailureReason:  tx.FailureReason,
		})
	}
	return out
}

// domainNotificationToProto converts a toast to the wire message; the action callback stays server side
func domainNotificationToProto(n domain.Notification) *Notification {
	out := &Notification{
		Id:         n.ID,
		Kind:       string(n.Kind),
		Title:      n.Title,
		Message:    n.Message,
		CreatedAt:  timestamppb.New(n.CreatedAt),
		AutoHide:   n.AutoHide,
		DurationMs: n.Duration.Milliseconds(),
	}
	if n.Action != nil {
		out.ActionLabel = n.Action.Label
	}
	return out
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrNoRateSnapshot):
		return status.Errorf(codes.NotFound, "%s", err.Error())

	case errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrInvalidPreference),
		errors.Is(err, domain.ErrInvalidProfileField),
		errors.Is(err, domain.ErrInvalidFilter):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())

	case errors.Is(err, domain.ErrFieldNotOnStep),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrWizardClosed),
		errors.Is(err, domain.ErrNoNotificationAction):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())

	case errors.Is(err, domain.ErrSubmitInProgress),
		errors.Is(err, domain.ErrSubmissionFailed):
		return status.Errorf(codes.Aborted, "%s", err.Error())

	case errors.Is(err, domain.ErrRefreshThrottled):
		return status.Errorf(codes.ResourceExhausted, "%s", err.Error())

	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	if _, ok := wizard.IsValidation(err); ok {
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
