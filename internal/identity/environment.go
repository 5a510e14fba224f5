package identity

import (
	"strings"

	"github.com/PolarWolf314/herald/internal/utils"
)

// CurrentName derives a Name from the running process and user.
//
// The identifier is the user's full name in dotted lowercase followed by the
// process name ("jane.doe.herald"). The login name stands in for an account
// without a full name, and the process name is used alone when the user
// cannot be resolved.
func CurrentName() Name {
	process := utils.ProcessName()

	owner, err := utils.GetFullName()
	if err != nil || owner == "" {
		if owner, err = utils.GetUsername(); err != nil {
			owner = ""
		}
	}

	identifier := utils.DottedIdentifier(owner, process)
	if identifier == "" {
		identifier = strings.ToLower(process)
	}

	return NewName(identifier, process, "")
}
