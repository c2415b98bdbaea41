package internaldefs

import (
	lireddit "github.com/VivianLin61/lireddit-backend"
)

// CounterDef binds a core counter slot to its exported name and help text.
// Exporters iterate CounterDefs so all backends emit the same series.
type CounterDef struct {
	ID   lireddit.MetricID
	Name string
	Help string
}

var CounterDefs = []CounterDef{
	{ID: lireddit.MetricRegisterSuccess, Name: "lireddit_register_success_total", Help: "Successful registrations."},
	{ID: lireddit.MetricRegisterConflict, Name: "lireddit_register_conflict_total", Help: "Registrations rejected for a taken username or email."},
	{ID: lireddit.MetricRegisterInvalid, Name: "lireddit_register_invalid_total", Help: "Registrations rejected by input validation."},
	{ID: lireddit.MetricLoginSuccess, Name: "lireddit_login_success_total", Help: "Successful login attempts."},
	{ID: lireddit.MetricLoginFailure, Name: "lireddit_login_failure_total", Help: "Failed login attempts."},
	{ID: lireddit.MetricLogout, Name: "lireddit_logout_total", Help: "Logout operations."},
	{ID: lireddit.MetricSessionCreated, Name: "lireddit_session_created_total", Help: "Created sessions."},
	{ID: lireddit.MetricSessionDestroyed, Name: "lireddit_session_destroyed_total", Help: "Destroyed sessions."},
	{ID: lireddit.MetricPasswordResetRequest, Name: "lireddit_password_reset_request_total", Help: "Password reset requests."},
	{ID: lireddit.MetricPasswordResetConfirmSuccess, Name: "lireddit_password_reset_confirm_success_total", Help: "Successful password reset redemptions."},
	{ID: lireddit.MetricPasswordResetConfirmFailure, Name: "lireddit_password_reset_confirm_failure_total", Help: "Failed password reset redemptions."},
}
