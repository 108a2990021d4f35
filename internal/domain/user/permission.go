package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Leave Management
	PermissionLeaveViewOwn        Permission = "leave.view_own"
	PermissionLeaveCreate         Permission = "leave.create"
	PermissionLeaveViewAll        Permission = "leave.view_all"
	PermissionLeaveManagerReview  Permission = "leave.manager_review"
	PermissionLeaveHRReview       Permission = "leave.hr_review"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceMark    Permission = "attendance.mark"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Content Management
	PermissionHolidayManage Permission = "holiday.manage"
	PermissionNewsManage    Permission = "news.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveManagerReview,
		PermissionLeaveHRReview,
		PermissionAttendanceViewOwn,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionHolidayManage,
		PermissionNewsManage,
		PermissionUserManage,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveHRReview,
		PermissionAttendanceViewOwn,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveManagerReview,
		PermissionAttendanceViewOwn,
		PermissionAttendanceMark,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceMark,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
