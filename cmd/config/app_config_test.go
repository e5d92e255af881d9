package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/entities"
	"local-chef-bazaar/internal/utils"
	"local-chef-bazaar/pkg/store/storetest"
)

type insertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type updateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type deleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type appSuite struct {
	suite.Suite
	db  *storetest.Database
	app *fiber.App
}

func TestApp(t *testing.T) {
	suite.Run(t, new(appSuite))
}

func (s *appSuite) SetupTest() {
	s.db = storetest.NewDatabase()
	app, err := NewApp(s.db)
	s.Require().NoError(err)
	s.app = app
}

func (s *appSuite) do(method, path string, body interface{}) (int, []byte) {
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			s.Require().NoError(err)
			raw = string(encoded)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, out
}

func (s *appSuite) decode(raw []byte, out interface{}) {
	s.Require().NoError(json.Unmarshal(raw, out), string(raw))
}

func (s *appSuite) insert(path string, body interface{}, wantStatus int) string {
	status, raw := s.do(http.MethodPost, path, body)
	s.Require().Equal(wantStatus, status, string(raw))

	var ack insertAck
	s.decode(raw, &ack)
	s.Require().True(ack.Acknowledged)
	_, err := primitive.ObjectIDFromHex(ack.InsertedID)
	s.Require().NoError(err)
	return ack.InsertedID
}

func (s *appSuite) TestHealth() {
	status, body := s.do(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("Server is running", string(body))
}

func (s *appSuite) TestEchoData() {
	status, raw := s.do(http.MethodPost, "/data", map[string]interface{}{"hello": "world"})
	s.Equal(http.StatusOK, status)

	var res struct {
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	s.decode(raw, &res)
	s.Equal("Data received successfully", res.Message)
	s.Equal("world", res.Data["hello"])
}

func (s *appSuite) TestUnknownRoute() {
	status, _ := s.do(http.MethodGet, "/nope", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *appSuite) TestCreateUserWithoutEmail() {
	status, raw := s.do(http.MethodPost, "/users", map[string]string{"name": "Ana"})
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(raw), "Email is required")
	s.Zero(s.db.Coll(entities.UsersCollection).Len())
}

func (s *appSuite) TestCreateUserTwice() {
	s.insert("/users", map[string]string{"email": "a@x.com", "name": "Ana"}, http.StatusCreated)

	status, raw := s.do(http.MethodPost, "/users", map[string]string{"email": "a@x.com"})
	s.Equal(http.StatusConflict, status)
	s.Contains(string(raw), "User already exists")
	s.Equal(1, s.db.Coll(entities.UsersCollection).Len())
}

func (s *appSuite) getUser(id string) map[string]interface{} {
	status, raw := s.do(http.MethodGet, "/users/"+id, nil)
	s.Require().Equal(http.StatusOK, status, string(raw))
	var user map[string]interface{}
	s.decode(raw, &user)
	return user
}

func (s *appSuite) TestUserLifecycle() {
	id := s.insert("/users", map[string]string{"email": "a@x.com", "name": "Ana", "photoURL": "p.png"}, http.StatusCreated)

	user := s.getUser(id)
	s.Equal(id, user["_id"])
	s.Equal("a@x.com", user["email"])
	s.Equal("active", user["status"])
	s.Equal("user", user["role"])
	createdAt, ok := user["createdAt"].(string)
	s.Require().True(ok)
	_, err := time.Parse(time.RFC3339, createdAt)
	s.NoError(err)

	status, raw := s.do(http.MethodPatch, "/users/"+id, map[string]string{"role": "chef", "name": "ignored"})
	s.Require().Equal(http.StatusOK, status, string(raw))
	var ack updateAck
	s.decode(raw, &ack)
	s.EqualValues(1, ack.MatchedCount)
	s.EqualValues(1, ack.ModifiedCount)

	user = s.getUser(id)
	s.Equal("chef", user["role"])
	s.Equal("active", user["status"])
	s.Equal("Ana", user["name"])
	s.Equal("p.png", user["photoURL"])

	status, raw = s.do(http.MethodGet, "/users", nil)
	s.Require().Equal(http.StatusOK, status)
	var users []map[string]interface{}
	s.decode(raw, &users)
	s.Len(users, 1)
}

func (s *appSuite) TestCreateUserKeepsSubmittedFields() {
	id := s.insert("/users", map[string]string{"email": "c@x.com", "role": "chef", "phone": "123"}, http.StatusCreated)

	user := s.getUser(id)
	s.Equal("chef", user["role"])
	s.Equal("active", user["status"])
	s.Equal("123", user["phone"])
}

func (s *appSuite) TestListUsersWithLegacyDocument() {
	_, err := s.db.Coll(entities.UsersCollection).InsertOne(context.Background(), entities.Document{
		"email":     "old@x.com",
		"phone":     "555",
		"createdAt": "1/1/2024",
	})
	s.Require().NoError(err)

	status, raw := s.do(http.MethodGet, "/users", nil)
	s.Require().Equal(http.StatusOK, status, string(raw))
	var users []map[string]interface{}
	s.decode(raw, &users)
	s.Require().Len(users, 1)
	s.Equal("old@x.com", users[0]["email"])
	s.Equal("1/1/2024", users[0]["createdAt"])

	id, ok := users[0]["_id"].(string)
	s.Require().True(ok)
	s.Equal("555", s.getUser(id)["phone"])
}

func (s *appSuite) TestMyMealsWithoutEmail() {
	s.insert("/meals", map[string]string{"title": "Ownerless"}, http.StatusOK)

	status, raw := s.do(http.MethodGet, "/my-meals", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("[]", string(raw))
}

func (s *appSuite) TestCreateWithoutBody() {
	status, raw := s.do(http.MethodPost, "/users", nil)
	s.Equal(http.StatusBadRequest, status)
	s.Contains(string(raw), "Email is required")

	for _, path := range []string{"/meals", "/reviews", "/orders", "/favorites"} {
		status, raw := s.do(http.MethodPost, path, nil)
		s.Require().Contains([]int{http.StatusOK, http.StatusCreated}, status, path+" "+string(raw))
	}
	s.Equal(1, s.db.Coll(entities.MealsCollection).Len())
	s.Equal(1, s.db.Coll(entities.FavoritesCollection).Len())
}

func (s *appSuite) TestPatchUserWithoutFields() {
	id := s.insert("/users", map[string]string{"email": "a@x.com"}, http.StatusCreated)

	status, _ := s.do(http.MethodPatch, "/users/"+id, map[string]string{"name": "x"})
	s.Equal(http.StatusBadRequest, status)
}

func (s *appSuite) TestGetUnknownUser() {
	status, raw := s.do(http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil)
	s.Equal(http.StatusOK, status)
	s.Equal("null", string(raw))
}

func (s *appSuite) TestMalformedIDIsServerError() {
	for _, path := range []string{"/users/not-an-id", "/meals/not-an-id"} {
		status, raw := s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusInternalServerError, status, path)
		s.JSONEq(`{"message":"Internal server error"}`, string(raw))
	}
}

func (s *appSuite) TestMealScenario() {
	status, raw := s.do(http.MethodPost, "/meals", map[string]string{
		"title":     "Pasta",
		"userEmail": "a@x.com",
		"date":      "2024-01-01",
	})
	s.Require().Equal(http.StatusOK, status, string(raw))
	var ack insertAck
	s.decode(raw, &ack)
	s.True(ack.Acknowledged)

	s.insert("/meals", map[string]string{"title": "Curry", "userEmail": "b@x.com"}, http.StatusOK)

	status, raw = s.do(http.MethodGet, "/my-meals?email=a@x.com", nil)
	s.Require().Equal(http.StatusOK, status)
	var meals []map[string]interface{}
	s.decode(raw, &meals)
	s.Require().Len(meals, 1)
	s.Equal("Pasta", meals[0]["title"])
	s.Equal(ack.InsertedID, meals[0]["_id"])

	status, raw = s.do(http.MethodGet, "/meals/"+ack.InsertedID, nil)
	s.Require().Equal(http.StatusOK, status)
	var meal map[string]interface{}
	s.decode(raw, &meal)
	s.Equal("Pasta", meal["title"])
	s.Equal("2024-01-01", meal["date"])

	status, raw = s.do(http.MethodDelete, "/meals/"+ack.InsertedID, nil)
	s.Require().Equal(http.StatusOK, status)
	var del deleteAck
	s.decode(raw, &del)
	s.EqualValues(1, del.DeletedCount)

	status, raw = s.do(http.MethodGet, "/meals/"+ack.InsertedID, nil)
	s.Equal(http.StatusNotFound, status)
	s.JSONEq(`{"message":"Meal not found"}`, string(raw))

	status, raw = s.do(http.MethodGet, "/meals", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &meals)
	s.Len(meals, 1)
}

func (s *appSuite) TestEmptyListsAreArrays() {
	for _, path := range []string{"/users", "/meals", "/reviews", "/orders", "/favorites", "/my-meals?email=a@x.com"} {
		status, raw := s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusOK, status, path)
		s.Equal("[]", string(raw), path)
	}
}

func (s *appSuite) TestMealFeedLimit() {
	s.T().Cleanup(utils.LoadConfig)
	s.T().Setenv("MEALS_FEED_LIMIT", "6")
	utils.LoadConfig()
	app, err := NewApp(s.db)
	s.Require().NoError(err)
	s.app = app

	for _, date := range []string{"2024-08-01", "2024-02-01", "2024-07-01", "2024-01-01", "2024-05-01", "2024-03-01", "2024-06-01", "2024-04-01"} {
		s.insert("/meals", map[string]string{"date": date}, http.StatusOK)
	}

	status, raw := s.do(http.MethodGet, "/meals", nil)
	s.Require().Equal(http.StatusOK, status)
	var meals []map[string]interface{}
	s.decode(raw, &meals)
	s.Require().Len(meals, 6)
	for i, want := range []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01", "2024-05-01", "2024-06-01"} {
		s.Equal(want, meals[i]["date"])
	}
}

func (s *appSuite) TestReviews() {
	first := s.insert("/reviews", map[string]interface{}{"foodId": "m1", "rating": 5, "comment": "tasty"}, http.StatusOK)
	s.insert("/reviews", map[string]interface{}{"foodId": "m2", "rating": 3}, http.StatusOK)
	s.insert("/reviews", map[string]interface{}{"foodId": "m1", "rating": 4}, http.StatusOK)

	status, raw := s.do(http.MethodGet, "/reviews/m1", nil)
	s.Require().Equal(http.StatusOK, status)
	var reviews []map[string]interface{}
	s.decode(raw, &reviews)
	s.Require().Len(reviews, 2)
	for _, review := range reviews {
		s.Equal("m1", review["foodId"])
	}

	status, raw = s.do(http.MethodPut, "/reviews/"+first, map[string]interface{}{"comment": "still tasty"})
	s.Require().Equal(http.StatusOK, status, string(raw))
	var ack updateAck
	s.decode(raw, &ack)
	s.EqualValues(1, ack.ModifiedCount)

	status, raw = s.do(http.MethodGet, "/reviews/m1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &reviews)
	s.Equal("still tasty", reviews[0]["comment"])
	s.EqualValues(5, reviews[0]["rating"])

	status, raw = s.do(http.MethodDelete, "/reviews/"+first, nil)
	s.Require().Equal(http.StatusOK, status)
	var del deleteAck
	s.decode(raw, &del)
	s.EqualValues(1, del.DeletedCount)

	status, raw = s.do(http.MethodGet, "/reviews", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &reviews)
	s.Len(reviews, 2)
}

func (s *appSuite) TestOrders() {
	first := s.insert("/orders", map[string]string{"userEmail": "a@x.com", "chefId": "c1", "status": "pending", "note": "no onions"}, http.StatusCreated)
	s.insert("/orders", map[string]string{"userEmail": "b@x.com", "chefId": "c1", "status": "pending"}, http.StatusCreated)
	s.insert("/orders", map[string]string{"userEmail": "a@x.com", "chefId": "c2", "status": "pending"}, http.StatusCreated)

	status, raw := s.do(http.MethodGet, "/orders/a@x.com", nil)
	s.Require().Equal(http.StatusOK, status)
	var orders []map[string]interface{}
	s.decode(raw, &orders)
	s.Require().Len(orders, 2)
	for _, order := range orders {
		s.Equal("a@x.com", order["userEmail"])
	}

	status, raw = s.do(http.MethodGet, "/chef-orders/c1", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &orders)
	s.Require().Len(orders, 2)
	for _, order := range orders {
		s.Equal("c1", order["chefId"])
	}

	status, raw = s.do(http.MethodPatch, "/orders/"+first, map[string]string{"status": "delivered", "chefId": "c9"})
	s.Require().Equal(http.StatusOK, status, string(raw))

	status, raw = s.do(http.MethodGet, "/orders/a@x.com", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &orders)
	s.Equal("delivered", orders[0]["status"])
	s.Equal("c1", orders[0]["chefId"])
	s.Equal("no onions", orders[0]["note"])

	status, raw = s.do(http.MethodGet, "/orders", nil)
	s.Require().Equal(http.StatusOK, status)
	s.decode(raw, &orders)
	s.Len(orders, 3)
}

func (s *appSuite) TestFavorites() {
	id := s.insert("/favorites", map[string]string{"mealId": "m1", "userEmail": "a@x.com"}, http.StatusCreated)
	s.insert("/favorites", map[string]string{"mealId": "m1", "userEmail": "a@x.com"}, http.StatusCreated)

	status, raw := s.do(http.MethodDelete, "/favorites/"+id, nil)
	s.Require().Equal(http.StatusOK, status)
	var del deleteAck
	s.decode(raw, &del)
	s.EqualValues(1, del.DeletedCount)

	status, raw = s.do(http.MethodGet, "/favorites", nil)
	s.Require().Equal(http.StatusOK, status)
	var favorites []map[string]interface{}
	s.decode(raw, &favorites)
	s.Len(favorites, 1)
}

func (s *appSuite) TestMalformedBody() {
	for _, path := range []string{"/users", "/meals", "/reviews", "/orders", "/favorites", "/data"} {
		status, raw := s.do(http.MethodPost, path, `{"broken"`)
		s.Equal(http.StatusBadRequest, status, path)
		s.Contains(string(raw), "failed to parse request body", path)
	}
}

func (s *appSuite) TestStoreFailureIsMasked() {
	s.db.Coll(entities.OrdersCollection).FailNext(errors.New("connection reset by peer"))

	status, raw := s.do(http.MethodGet, "/orders", nil)
	s.Equal(http.StatusInternalServerError, status)
	s.JSONEq(`{"message":"Internal server error"}`, string(raw))
	s.NotContains(string(raw), "connection reset")
}

func (s *appSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal("*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	s.NotEmpty(resp.Header.Get(fiber.HeaderXRequestID))
}
