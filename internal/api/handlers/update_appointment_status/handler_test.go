package update_appointment_status

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, caller domain.Caller, id uuid.UUID, req *models.UpdateStatusRequest) error {
	args := m.Called(caller.ID, id, req.Status)
	return args.Error(0)
}

func send(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/appointments/"+id+"/status", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	req = req.WithContext(middleware.WithCaller(req.Context(), testfixtures.CallerFor(testfixtures.Admin())))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_MapsServiceErrors(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"updated", nil, http.StatusOK, msgUpdated},
		{"not admin", appointments.ErrAccessDenied, http.StatusForbidden, msgForbidden},
		{"missing", appointments.ErrAppointmentNotFound, http.StatusNotFound, msgNotFound},
		{"completed is final", fmt.Errorf("%w: completed -> scheduled", appointments.ErrInvalidTransition), http.StatusConflict, msgInvalidTransition},
		{"reopen into taken slot", appointments.ErrSlotConflict, http.StatusConflict, msgSlotTaken},
		{"store failure", appointments.ErrInternal, http.StatusInternalServerError, msgUpdateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", testfixtures.AdminID, id, "scheduled").Return(tt.err).Once()

			rec := send(NewHandler(svc, validation.New(), logger.Nop()), id.String(), `{"status":"scheduled"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_RejectsBeforeCallingService(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, validation.New(), logger.Nop())

	rec := send(h, "not-a-uuid", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidAppointmentID)

	rec = send(h, uuid.NewString(), `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidStatus)

	rec = send(h, uuid.NewString(), `{"status":"cancelled","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
