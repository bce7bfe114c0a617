// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SystemSettingTable represents the 'system.setting' table.
type SystemSettingTable struct {
	Table     string
	Group     string
	Key       string
	Value     string
	UpdatedAt string
}

var SystemSetting = SystemSettingTable{
	Table:     "system.setting",
	Group:     "settinggroup",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updatedat",
}
