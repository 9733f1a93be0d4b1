package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
	"github.com/teamtrack/attendance-bot/internal/handlers/test"
)

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		text   string
		userID string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should record entry with explicit time",
			args: args{
				text:   "entrada 08:05",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					RecordEntry(gomock.Any(), int64(123456789), gomock.Any(), "08:05", "").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "entrada")
				assert.Contains(t, response.Text, "08:05")
			},
		},
		{
			name: "Should record entry with current time when omitted",
			args: args{
				text:   "entrada",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					RecordEntry(gomock.Any(), int64(123456789), gomock.Any(), gomock.Any(), "").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
			},
		},
		{
			name: "Should report unknown person on entry",
			args: args{
				text:   "entrada",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					RecordEntry(gomock.Any(), int64(123456789), gomock.Any(), gomock.Any(), "").
					Return(domain.ErrNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Usuario no registrado")
			},
		},
		{
			name: "Should warn when exit has no open entry",
			args: args{
				text:   "salida",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					RecordExit(gomock.Any(), int64(123456789), gomock.Any(), gomock.Any()).
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "No tienes una entrada abierta")
			},
		},
		{
			name: "Should show summary",
			args: args{
				text:   "resumen",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					ComputeSummary(gomock.Any(), int64(123456789)).
					Return(&entity.Summary{
						FullName:      "Juan Perez",
						BaseSeconds:   12 * 3600,
						WorkedSeconds: 8 * 3600,
						TotalSeconds:  20 * 3600,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Juan Perez")
				assert.Contains(t, response.Text, "20:00:00")
			},
		},
		{
			name: "Should block day report for non-admins",
			args: args{
				text:   "hoy",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					IsAdmin(gomock.Any(), int64(123456789)).
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "solo para administradores")
			},
		},
		{
			name: "Should show day report to admins",
			args: args{
				text:   "hoy",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					IsAdmin(gomock.Any(), int64(123456789)).
					Return(true, nil).Times(1)

				entry := "08:00:00"
				m.AttendanceMock.EXPECT().
					DayOverview(gomock.Any(), gomock.Any()).
					Return([]*entity.ReportRow{
						{FullName: "Juan Perez", EntryTime: &entry, Status: "Presente"},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Juan Perez")
				assert.Contains(t, response.Text, "Presente")
			},
		},
		{
			name: "Should block edit for non-admins",
			args: args{
				text:   "editar <@U555|ana> 2026-08-24 salida=15:00",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					IsAdmin(gomock.Any(), int64(123456789)).
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "solo para administradores")
			},
		},
		{
			name: "Should edit record as admin",
			args: args{
				text:   "editar <@U555|ana> 2026-08-24 salida=15:00 estado=permiso",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					IsAdmin(gomock.Any(), int64(123456789)).
					Return(true, nil).Times(1)

				exit := "15:00"
				status := domain.StatusPermiso
				m.AttendanceMock.EXPECT().
					EditRecord(gomock.Any(), int64(555), "2026-08-24", entity.RecordEdit{
						ExitTime: &exit,
						Status:   &status,
					}).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Registro del 2026-08-24 actualizado")
			},
		},
		{
			name: "Should delete person and records as admin",
			args: args{
				text:   "equipo eliminar <@U555|ana>",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.AttendanceMock.EXPECT().
					IsAdmin(gomock.Any(), int64(123456789)).
					Return(true, nil).Times(1)
				m.AttendanceMock.EXPECT().
					DeletePerson(gomock.Any(), int64(555)).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "todos sus registros fueron eliminados")
			},
		},
		{
			name: "Should reject unknown command",
			args: args{
				text:   "volar",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "comando desconocido")
			},
		},
		{
			name: "Should show help on empty text",
			args: args{
				text:   "",
				userID: "U123456789",
			},
			buildMocks: func(m test.ServiceMocks, args args) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Comandos disponibles")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m, tt.args)

			req := test.CreateSlackRequest(t, "/asistencia", tt.args.text,
				"C123456789", "test-channel", tt.args.userID, "T123456789", test.SigningSecret)
			recorder := test.CreateTestRecorder()

			handler.HandleSlashCommand(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			tt.checkResponse(t, recorder)
		})
	}
}

func TestSlackHandler_RejectsBadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/asistencia", "entrada",
		"C123456789", "test-channel", "U123456789", "T123456789", "wrong-secret")
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}
