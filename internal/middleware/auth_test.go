package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/zisth/zisthcom/internal/middleware"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
		mockIsLogged       bool
		mockIsLoggedErr    error
	}{
		{
			name:               "PublishedPostsWithoutToken",
			path:               "/blog/published",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "SinglePostWithoutToken",
			path:               "/blog/post/posts:abc123",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "SessionCheckWithoutToken",
			path:               "/a/session",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "AllPostsWithoutToken",
			path:               "/blog/all",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "SavePostWithoutToken",
			path:               "/blog/save",
			method:             "POST",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "SavePostValidToken",
			path:               "/blog/save",
			method:             "POST",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockIsLogged:       true,
		},
		{
			name:               "DeletePostInvalidToken",
			path:               "/blog/delete/posts:abc123",
			method:             "DELETE",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockIsLogged:       false,
		},
		{
			name:               "ImageUploadValidToken",
			path:               "/blog/image",
			method:             "POST",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockIsLogged:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-ZISTH-TOKEN", tc.token)

				mockLoginChecker.EXPECT().
					IsLogged(gomock.Any(), tc.token).
					Return(tc.mockIsLogged, tc.mockIsLoggedErr).AnyTimes()
			}

			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}
