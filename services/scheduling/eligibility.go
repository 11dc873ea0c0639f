package scheduling

import "glowdesk/models"

// EligibleStaff returns the staff members qualified for the named service.
// The join is by exact service name: qualification lists store names, not
// ids, and a rename that was never cascaded must surface as "nobody can do
// this" rather than silently matching something else.
func EligibleStaff(serviceName string, roster []models.Staff) []models.Staff {
	var eligible []models.Staff
	for _, member := range roster {
		if member.Performs(serviceName) {
			eligible = append(eligible, member)
		}
	}
	return eligible
}
