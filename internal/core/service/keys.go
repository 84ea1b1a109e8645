package service

// Durable store keys, one per state cell.
const (
	KeyEmployees       = "employees"
	KeyStudents        = "students"
	KeyRegisteredUsers = "registeredUsers"
	KeyCurrentUser     = "currentUser"
)
