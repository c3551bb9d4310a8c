package controllers

import (
	"context"
	"errors"
	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		InternalConfig:   internalConfig,
	}
}

// requestTimeout covers the two sequential store round trips of the
// recent-message fetcher.
func (ctrl *DashboardController) requestTimeout() time.Duration {
	seconds := ctrl.InternalConfig.App.DocstoreQueryTimeoutInSeconds
	if seconds <= 0 {
		seconds = constvars.DefaultDocstoreQueryTimeoutInSeconds
	}
	return 2 * time.Duration(seconds) * time.Second
}

func practitionerIDFromRequest(r *http.Request) string {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		return ""
	}
	return session.PractitionerID
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DashboardController.GetDashboard requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DashboardController.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.DashboardUsecase.GetDashboard(ctx, practitionerIDFromRequest(r))
	if err != nil {
		ctrl.Log.Error("DashboardController.GetDashboard error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.GetDashboardSuccessMessage
	if !result.Ready {
		message = constvars.GetDashboardNotReadyMessage
	}

	ctrl.Log.Info("DashboardController.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("ready", result.Ready),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *DashboardController) GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DashboardController.GetDashboardSummary requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DashboardController.GetDashboardSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.DashboardUsecase.GetDashboardSummary(ctx, practitionerIDFromRequest(r))
	if err != nil {
		ctrl.Log.Error("DashboardController.GetDashboardSummary error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DashboardController.GetDashboardSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSummarySuccessMessage, result)
}
