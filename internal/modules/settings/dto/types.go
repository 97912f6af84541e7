package dto

import "socialteam/internal/modules/settings/domain"

type SettingsOutput struct {
	Notifications bool `json:"notifications"`
	AutoStart     bool `json:"autoStart"`
	TaskDelay     int  `json:"taskDelay"`
}

type UpdateInput struct {
	Notifications *bool
	AutoStart     *bool
	TaskDelay     *int
}

func FromDomain(s domain.Settings) SettingsOutput {
	return SettingsOutput{Notifications: s.Notifications, AutoStart: s.AutoStart, TaskDelay: s.TaskDelay}
}
