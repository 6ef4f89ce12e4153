package cloudapi_test

import (
	"encoding/json"
	"net/http"
)

func decodeBody(request *http.Request, target interface{}) error {
	return json.NewDecoder(request.Body).Decode(target)
}
