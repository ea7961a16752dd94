//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/nataliadudina/bike-rental/internal/domain/user"
	"github.com/nataliadudina/bike-rental/internal/handler/api"
	reqdto "github.com/nataliadudina/bike-rental/internal/handler/dto/request"
	resdto "github.com/nataliadudina/bike-rental/internal/handler/dto/response"
	"github.com/nataliadudina/bike-rental/internal/mock/commandsmock"
	"github.com/nataliadudina/bike-rental/internal/mock/queriesmock"
	"github.com/nataliadudina/bike-rental/internal/pkg/errs"
	"github.com/nataliadudina/bike-rental/internal/pkg/pagination"
	"github.com/nataliadudina/bike-rental/internal/testutil"
	"github.com/nataliadudina/bike-rental/internal/usecase/commands"
	"github.com/nataliadudina/bike-rental/internal/usecase/queries"
	"github.com/nataliadudina/bike-rental/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	h := api.NewUserHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/api/users", requireModerator, h.List)
	s.router.GET("/api/users/:id", h.Get)
	s.router.PATCH("/api/users/:id", h.Update)
	s.router.DELETE("/api/users/:id", h.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: moderator gets a page", func() {
		params := pagination.Params{Page: 2, PageSize: 50}
		s.mockQueries.EXPECT().List(gomock.Any(), testModerator, params).Return(&queries.Page[queries.UserView]{
			Items: []*queries.UserView{{ID: testUser.UserID, Email: "rider@example.com", Role: "user", IsActive: true}},
			Meta:  pagination.NewMeta(params, 51),
		}, nil)

		rec := testutil.PerformRequest(s.T(), s.router, "GET", "/api/users?page=2&page_size=500", nil, moderatorToken)

		var body resdto.ListResponse[resdto.UserResponse]
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("rider@example.com", body.Items[0].Email)
		s.Equal(int64(51), body.Meta.Total)
	})

	s.Run("error: 403 for a regular user", func() {
		rec := testutil.PerformRequest(s.T(), s.router, "GET", "/api/users", nil, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *UserHandlerTestSuite) TestGet() {
	url := "/api/users/" + testUser.UserID.String()

	s.Run("success: owner sees the account", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), testUser.UserID, testUser).
			Return(&queries.UserView{ID: testUser.UserID, Email: "rider@example.com", IsActive: true}, nil)

		rec := testutil.PerformRequest(s.T(), s.router, "GET", url, nil, userToken)

		var body resdto.UserResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(testUser.UserID, body.ID)
	})

	s.Run("error: 403 for someone else's account", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), other, testUser).Return(nil, user.ErrNotAuthorized)

		rec := testutil.PerformRequest(s.T(), s.router, "GET", "/api/users/"+other.String(), nil, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to manage this account")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := testutil.PerformRequest(s.T(), s.router, "GET", "/api/users/not-a-uuid", nil, userToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 without identity", func() {
		rec := testutil.PerformRequest(s.T(), s.router, "GET", url, nil, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *UserHandlerTestSuite) TestUpdate() {
	url := "/api/users/" + testUser.UserID.String()
	last := "Lee"
	reqBody := reqdto.UpdateUserRequest{LastName: &last}

	s.Run("success: 200 with the updated profile", func() {
		email, err := user.NewEmail("rider@example.com")
		require.NoError(s.T(), err)
		name, err := user.NewFullName("Ivan", "Lee")
		require.NoError(s.T(), err)
		updated := user.Reconstruct(testUser.UserID, email, name, "hash", user.RoleUser, nil, true, fixedNow)
		s.mockCommands.EXPECT().Update(gomock.Any(), testUser.UserID, commands.UpdateUserInput{LastName: &last}, testUser).
			Return(updated, nil)

		rec := testutil.PerformRequest(s.T(), s.router, "PATCH", url, reqBody, userToken)

		var body resdto.UserResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Lee", body.LastName)
		s.Equal("Ivan", body.FirstName)
	})

	s.Run("error: 400 for a malformed email", func() {
		bad := "nope"
		rec := testutil.PerformRequest(s.T(), s.router, "PATCH", url, reqdto.UpdateUserRequest{Email: &bad}, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), testUser.UserID, gomock.Any(), testUser).
			Return(nil, errs.Wrap(user.ErrEmailTaken, "update user"))

		rec := testutil.PerformRequest(s.T(), s.router, "PATCH", url, reqBody, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})

	s.Run("error: 403 for a moderator editing someone else", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), testUser.UserID, gomock.Any(), testModerator).
			Return(nil, user.ErrNotAuthorized)

		rec := testutil.PerformRequest(s.T(), s.router, "PATCH", url, reqBody, moderatorToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	url := "/api/users/" + testUser.UserID.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), testUser.UserID, testUser).Return(nil)

		rec := testutil.PerformRequest(s.T(), s.router, "DELETE", url, nil, userToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while a rental is open", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), testUser.UserID, testUser).
			Return(errs.Wrap(user.ErrHasOpenRentals, "delete user"))

		rec := testutil.PerformRequest(s.T(), s.router, "DELETE", url, nil, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusConflict, "account has an unfinished rental")
	})

	s.Run("error: 404 for an unknown account", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), testUser.UserID, gomock.AssignableToTypeOf(shared.Actor{})).
			Return(user.ErrNotFound)

		rec := testutil.PerformRequest(s.T(), s.router, "DELETE", url, nil, userToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})
}
