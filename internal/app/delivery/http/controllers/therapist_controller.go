package controllers

import (
	"context"
	"errors"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
}

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase) *TherapistController {
	return &TherapistController{
		Log:              logger,
		TherapistUsecase: therapistUsecase,
	}
}

func (ctrl *TherapistController) RegisterTherapist(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TherapistController.RegisterTherapist requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TherapistController.RegisterTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RegisterTherapist)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("TherapistController.RegisterTherapist error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeRegisterTherapistRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TherapistController.RegisterTherapist validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TherapistUsecase.RegisterTherapist(ctx, request)
	if err != nil {
		ctrl.Log.Error("TherapistController.RegisterTherapist error from usecase",
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

	ctrl.Log.Info("TherapistController.RegisterTherapist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterTherapistSuccessMessage, result)
}

func (ctrl *TherapistController) GetTherapistProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TherapistController.GetTherapistProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TherapistController.GetTherapistProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		ctrl.Log.Error("TherapistController.GetTherapistProfile session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TherapistUsecase.GetTherapistProfile(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("TherapistController.GetTherapistProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TherapistController.GetTherapistProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistProfileSuccessMessage, result)
}
