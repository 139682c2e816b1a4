package app

import (
	"github.com/gorilla/mux"
	"github.com/vacaytracker/vacaytracker/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Trips
	r.HandleFunc("/api/trip", deps.TripHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/trip", deps.TripHandler.Create).Methods("POST")
	r.HandleFunc("/api/trip/active", deps.TripHandler.GetActive).Methods("GET")
	r.HandleFunc("/api/trip/{id}/activate", deps.TripHandler.Activate).Methods("PUT")
	r.HandleFunc("/api/trip/{id}/close", deps.TripHandler.Close).Methods("POST")
	r.HandleFunc("/api/trip/{id}/reopen", deps.TripHandler.Reopen).Methods("POST")

	// Expenses (always on the active trip)
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Add).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Budget of the active trip
	r.HandleFunc("/api/budget", deps.BudgetHandler.Get).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.Update).Methods("PUT")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/stats/daily", deps.StatsHandler.GetDaily).Methods("GET")
	r.HandleFunc("/api/stats/category", deps.StatsHandler.GetByCategory).Methods("GET")
	r.HandleFunc("/api/stats/tips", deps.StatsHandler.GetMoneyTips).Methods("GET")

	// Export
	r.HandleFunc("/api/export", deps.ExportHandler.CreateExport).Methods("POST")

	// Notifications
	r.HandleFunc("/api/notification", deps.NotificationHandler.GetActive).Methods("GET")
	r.HandleFunc("/api/notification", deps.NotificationHandler.ClearAll).Methods("DELETE")

	// Account settings
	r.HandleFunc("/api/account/profile", deps.AccountHandler.GetProfile).Methods("GET")
	r.HandleFunc("/api/account/profile", deps.AccountHandler.UpdatePersonalInfo).Methods("PUT")
	r.HandleFunc("/api/account/password", deps.AccountHandler.ChangePassword).Methods("PUT")
	r.HandleFunc("/api/account/notifications", deps.AccountHandler.UpdateNotificationPrefs).Methods("PUT")
	r.HandleFunc("/api/account/preferences", deps.AccountHandler.UpdatePreferences).Methods("PUT")
	r.HandleFunc("/api/account/deactivate", deps.AccountHandler.Deactivate).Methods("POST")
	r.HandleFunc("/api/account/data", deps.AccountHandler.DownloadData).Methods("GET")
	r.HandleFunc("/api/account/timezones", deps.AccountHandler.GetTimeZones).Methods("GET")
	r.HandleFunc("/api/account/languages", deps.AccountHandler.GetLanguages).Methods("GET")
}
