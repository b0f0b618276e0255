package access

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type accessUsecase struct {
	ClinicBackendClient       contracts.ClinicBackendClient
	SubscriptionBackendClient contracts.SubscriptionBackendClient
	Decisions                 *prometheus.CounterVec
	Log                       *zap.Logger
}

func NewAccessUsecase(
	clinicBackendClient contracts.ClinicBackendClient,
	subscriptionBackendClient contracts.SubscriptionBackendClient,
	decisions *prometheus.CounterVec,
	logger *zap.Logger,
) contracts.AccessUsecase {
	return &accessUsecase{
		ClinicBackendClient:       clinicBackendClient,
		SubscriptionBackendClient: subscriptionBackendClient,
		Decisions:                 decisions,
		Log:                       logger,
	}
}

// Evaluate runs the access gate for one request. Nothing is cached. Any
// failure other than a missing clinic resolves to unauthenticated.
func (uc *accessUsecase) Evaluate(ctx context.Context, session *models.Session) *responses.AccessDecision {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	decision := uc.evaluate(ctx, session)

	if uc.Decisions != nil {
		uc.Decisions.WithLabelValues(decision.State).Inc()
	}
	uc.Log.Info("accessUsecase.Evaluate decided",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, decision.Role),
		zap.String(constvars.LoggingAccessStateKey, decision.State),
		zap.String(constvars.LoggingRedirectKey, decision.Redirect),
	)
	return decision
}

func (uc *accessUsecase) evaluate(ctx context.Context, session *models.Session) *responses.AccessDecision {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if session == nil || session.AccessToken == "" || session.User.Role == "" {
		return unauthenticated("")
	}
	role := session.User.Role
	if role == constvars.RoleSuperadmin {
		return &responses.AccessDecision{State: constvars.AccessStateActive, Role: role}
	}

	uc.Log.Debug("accessUsecase.evaluate checking clinic subscription",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccessStateKey, constvars.AccessStateChecking),
	)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	clinic, err := uc.ClinicBackendClient.FindOwnClinic(ctx)
	if err != nil {
		if role == constvars.RoleOwner && exceptions.StatusCode(err) == constvars.StatusNotFound {
			return &responses.AccessDecision{
				State:    constvars.AccessStateNoClinic,
				Redirect: constvars.RedirectSetupClinic,
				Role:     role,
			}
		}
		uc.Log.Warn("accessUsecase.evaluate clinic lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return unauthenticated(role)
	}

	subscription, found := subscriptionFromClinic(clinic)
	if !found {
		raw, err := uc.SubscriptionBackendClient.FindCurrent(ctx)
		if err != nil {
			uc.Log.Warn("accessUsecase.evaluate subscription lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return unauthenticated(role)
		}
		subscription, found = FindSubscription(raw)
	}

	switch {
	case !found:
		return &responses.AccessDecision{
			State:    constvars.AccessStateNoSubscription,
			Redirect: constvars.RedirectChoosePlan,
			Role:     role,
		}
	case !NormalizeActive(subscription):
		return &responses.AccessDecision{
			State:    constvars.AccessStatePendingSubscription,
			Redirect: constvars.RedirectWaitingState,
			Role:     role,
		}
	default:
		return &responses.AccessDecision{State: constvars.AccessStateActive, Role: role}
	}
}

// subscriptionFromClinic uses the subscription embedded in the clinic
// payload when one is present. An empty object still counts and normalizes
// to inactive.
func subscriptionFromClinic(clinic []byte) (gjson.Result, bool) {
	embedded := gjson.GetBytes(clinic, "subscription")
	switch {
	case embedded.IsObject():
		return embedded, true
	case embedded.IsArray():
		return FindSubscription([]byte(embedded.Raw))
	}
	return gjson.Result{}, false
}

func unauthenticated(role string) *responses.AccessDecision {
	return &responses.AccessDecision{
		State:    constvars.AccessStateUnauthenticated,
		Redirect: constvars.RedirectLogin,
		Role:     role,
	}
}
