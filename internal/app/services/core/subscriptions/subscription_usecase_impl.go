package subscriptions

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/app/services/shared/events"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"sort"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type subscriptionUsecase struct {
	SubscriptionBackendClient contracts.SubscriptionBackendClient
	EventPublisher            contracts.EventPublisher
	Log                       *zap.Logger
}

func NewSubscriptionUsecase(
	subscriptionBackendClient contracts.SubscriptionBackendClient,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	return &subscriptionUsecase{
		SubscriptionBackendClient: subscriptionBackendClient,
		EventPublisher:            eventPublisher,
		Log:                       logger,
	}
}

// GetOverview returns the plans an owner can pick from, cheapest first, and
// the clinic's current subscription when one is known.
func (uc *subscriptionUsecase) GetOverview(ctx context.Context, session *models.Session) (*responses.SubscriptionOverview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.GetOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	raw, err := uc.SubscriptionBackendClient.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}

	overview := &responses.SubscriptionOverview{Plans: []models.SubscriptionPlan{}}
	doc := gjson.ParseBytes(raw)
	plans := gjson.Result{}
	switch {
	case doc.IsArray():
		plans = doc
	case doc.IsObject():
		plans = doc.Get("plans")
		if current := doc.Get("current_subscription"); current.IsObject() {
			overview.CurrentSubscription = json.RawMessage(current.Raw)
		}
	}
	if plans.IsArray() {
		if err := json.Unmarshal([]byte(plans.Raw), &overview.Plans); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceSubscriptionPlan)
		}
	}

	// The clinic stored at login may already carry the subscription.
	if embedded := gjson.GetBytes(session.User.Clinic, "subscription"); embedded.IsObject() {
		overview.CurrentSubscription = json.RawMessage(embedded.Raw)
	}

	sortByMonthlyPrice(overview.Plans)
	return overview, nil
}

// RequestPlanChange asks the platform to move the clinic onto another plan.
// The request stays pending until a superadmin activates it.
func (uc *subscriptionUsecase) RequestPlanChange(ctx context.Context, session *models.Session, request *requests.RequestPlanChange) (*responses.NextStep, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.RequestPlanChange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.User.ID),
	)

	if request.ClinicID == "" {
		request.ClinicID = session.ClinicID()
	}
	if request.ClinicID == "" {
		return nil, exceptions.ErrClinicMissingInSession(errors.New("no clinic id in session"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	amount, err := utils.ParseAmount("amount", request.Amount)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := map[string]interface{}{
		"clinic_id":            request.ClinicID,
		"subscription_plan_id": request.SubscriptionPlanID,
		"amount":               amount,
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	if err := uc.SubscriptionBackendClient.RequestPlanChange(ctx, payload); err != nil {
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, &contracts.ActivityEvent{
		Event:      constvars.EventPlanChangeRequested,
		ActorRole:  session.User.Role,
		ActorID:    session.User.ID,
		ResourceID: request.ClinicID,
		Payload:    payload,
	})

	return &responses.NextStep{Redirect: constvars.RedirectWaitingState}, nil
}

func (uc *subscriptionUsecase) FindAllPlans(ctx context.Context, session *models.Session) ([]models.SubscriptionPlan, error) {
	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	plans, err := uc.SubscriptionBackendClient.FindAllPlans(ctx)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}
	return plans, nil
}

func (uc *subscriptionUsecase) FindPlanByID(ctx context.Context, session *models.Session, planID string) (*models.SubscriptionPlan, error) {
	if err := utils.ValidateUrlParamID(planID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPlanID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.SubscriptionBackendClient.FindPlanByID(ctx, planID)
}

// SavePlan creates a plan, or updates it when subscription_plan_id is set.
func (uc *subscriptionUsecase) SavePlan(ctx context.Context, session *models.Session, request *requests.SavePlan) (*models.SubscriptionPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.SavePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subscription_plan_id", request.SubscriptionPlanID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	priceMonthly, err := utils.ParseAmount("price_monthly", request.PriceMonthly)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	priceYearly, err := utils.ParseAmount("price_yearly", request.PriceYearly)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := map[string]interface{}{
		"name":           request.Name,
		"description":    request.Description,
		"price_monthly":  priceMonthly,
		"price_yearly":   priceYearly,
		"max_doctors":    request.MaxDoctors,
		"max_assistants": request.MaxAssistants,
		"max_patients":   request.MaxPatients,
		"is_active":      request.IsActive,
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)

	var plan *models.SubscriptionPlan
	if request.SubscriptionPlanID != "" {
		payload["subscription_plan_id"] = request.SubscriptionPlanID
		plan, err = uc.SubscriptionBackendClient.UpdatePlan(ctx, payload)
	} else {
		plan, err = uc.SubscriptionBackendClient.CreatePlan(ctx, payload)
	}
	if err != nil {
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, &contracts.ActivityEvent{
		Event:      constvars.EventPlanSaved,
		ActorRole:  session.User.Role,
		ActorID:    session.User.ID,
		ResourceID: request.SubscriptionPlanID,
		Payload:    payload,
	})
	return plan, nil
}

func (uc *subscriptionUsecase) FindAllRequests(ctx context.Context, session *models.Session) ([]models.SubscriptionRequest, error) {
	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	subscriptionRequests, err := uc.SubscriptionBackendClient.FindAllRequests(ctx)
	if err != nil {
		return nil, err
	}
	if subscriptionRequests == nil {
		subscriptionRequests = []models.SubscriptionRequest{}
	}
	return subscriptionRequests, nil
}

func (uc *subscriptionUsecase) ActivateRequest(ctx context.Context, session *models.Session, request *requests.ActivateSubscriptionRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.ActivateRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subscription_request_id", request.SubscriptionRequestID),
	)

	if err := utils.ValidateUrlParamID(request.SubscriptionRequestID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, "subscription_request_id")
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	if err := uc.SubscriptionBackendClient.ActivateRequest(ctx, request); err != nil {
		return err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, &contracts.ActivityEvent{
		Event:      constvars.EventSubscriptionActivated,
		ActorRole:  session.User.Role,
		ActorID:    session.User.ID,
		ResourceID: request.SubscriptionRequestID,
		Payload:    request,
	})
	return nil
}

// GetPaymentsOverview loads plans and pending requests in parallel.
func (uc *subscriptionUsecase) GetPaymentsOverview(ctx context.Context, session *models.Session) (*responses.PaymentsOverview, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.GetPaymentsOverview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	overview := &responses.PaymentsOverview{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Plans, err = uc.FindAllPlans(gctx, session)
		return err
	})
	g.Go(func() (err error) {
		overview.Requests, err = uc.FindAllRequests(gctx, session)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

func sortByMonthlyPrice(plans []models.SubscriptionPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].MonthlyPrice() < plans[j].MonthlyPrice()
	})
}
