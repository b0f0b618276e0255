package roles

import (
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/pkg/exceptions"
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"go.uber.org/zap"
)

var (
	//go:embed rbac_model.conf
	rbacModel string
	//go:embed rbac_policy.csv
	rbacPolicy string
)

type roleUsecase struct {
	Enforcer *casbin.Enforcer
	Log      *zap.Logger
}

// NewRoleUsecase builds an enforcer from the embedded model and policy.
func NewRoleUsecase(logger *zap.Logger) (contracts.RoleUsecase, error) {
	enforcer, err := NewEnforcer(rbacModel, rbacPolicy)
	if err != nil {
		return nil, err
	}
	return &roleUsecase{
		Enforcer: enforcer,
		Log:      logger,
	}, nil
}

// NewEnforcer loads a casbin model and a policy written in casbin's CSV
// format ("p, role, method, path" and "g, role, group" lines).
func NewEnforcer(modelText, policyText string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}
	return enforcer, nil
}

func (uc *roleUsecase) IsPermitted(role, method, path string) (bool, error) {
	if role == "" {
		return false, nil
	}
	allowed, err := uc.Enforcer.Enforce(role, method, path)
	if err != nil {
		uc.Log.Error("roleUsecase.IsPermitted enforce error",
			zap.String("role", role),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return false, exceptions.ErrRBACEnforce(err)
	}
	return allowed, nil
}
