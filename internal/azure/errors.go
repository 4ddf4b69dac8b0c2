package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
)

// ARM error codes this tool reacts to.
const (
	codeAuthorizationFailed  = "AuthorizationFailed"
	codeRoleAssignmentExists = "RoleAssignmentExists"
)

// isArmErrorCode checks if the error is an ARM response error with one of the
// given codes.
func isArmErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range codes {
			if respErr.ErrorCode == code {
				return true
			}
		}
	}
	return false
}

// IsAuthorizationDenied reports whether a call failed because the signed-in
// identity lacks permission at the target scope.
func IsAuthorizationDenied(err error) bool {
	if isArmErrorCode(err, codeAuthorizationFailed) {
		return true
	}
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusForbidden
}

// IsRoleAssignmentExists reports whether the role assignment already exists,
// which a repeat run treats as success.
func IsRoleAssignmentExists(err error) bool {
	if isArmErrorCode(err, codeRoleAssignmentExists) {
		return true
	}
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusConflict
}

// IsNotFound reports whether a resource was not found.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// GraphErrorMessage extracts the server-side message from a Microsoft Graph
// error, or returns an empty string if the error is not one.
func GraphErrorMessage(err error) string {
	var odErr *odataerrors.ODataError
	if !errors.As(err, &odErr) {
		return ""
	}
	mainErr := odErr.GetErrorEscaped()
	if mainErr == nil {
		return ""
	}
	return strv(mainErr.GetMessage())
}
