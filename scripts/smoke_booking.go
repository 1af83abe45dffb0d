// +build ignore

// Ручной прогон happy-path сценария против запущенного API:
// создаёт справочники, маршрут и вагон от имени админа, ищет маршрут,
// покупает билет и оплачивает заказ от имени пассажира.
//
//	go run scripts/smoke_booking.go -api http://localhost:8080 -secret dev-secret
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(secret string, userID int64, role string) string {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	return token
}

func call(method, url, token string, body any) map[string]any {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("%s %s: decode response: %v", method, url, err)
	}
	if resp.StatusCode >= 400 {
		log.Fatalf("%s %s: HTTP %d: %v", method, url, resp.StatusCode, out)
	}

	fmt.Printf("%s %s -> %d\n", method, url, resp.StatusCode)
	return out
}

func dataID(out map[string]any) int64 {
	data, ok := out["data"].(map[string]any)
	if !ok {
		log.Fatalf("no data object in response: %v", out)
	}
	id, ok := data["id"].(float64)
	if !ok {
		log.Fatalf("no id in response data: %v", data)
	}
	return int64(id)
}

func main() {
	api := flag.String("api", "http://localhost:8080", "API base URL")
	secret := flag.String("secret", "dev-secret", "JWT secret")
	flag.Parse()

	admin := mintToken(*secret, 1, "admin")
	user := mintToken(*secret, 42, "user")

	base := *api + "/api/v1"

	run := time.Now().Unix()
	depCity := fmt.Sprintf("Moscow-%d", run)
	moscow := dataID(call("POST", base+"/cities", admin, map[string]any{
		"city_name": depCity,
	}))
	tver := dataID(call("POST", base+"/cities", admin, map[string]any{
		"city_name": fmt.Sprintf("Tver-%d", run),
	}))

	depPoint := dataID(call("POST", base+"/arrival-points", admin, map[string]any{
		"city": moscow, "arrival_place": "Ленинградский вокзал",
	}))
	arrPoint := dataID(call("POST", base+"/arrival-points", admin, map[string]any{
		"city": tver, "arrival_place": "Станция Тверь",
	}))

	departure := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	route := dataID(call("POST", base+"/routes", admin, map[string]any{
		"departure_point": depPoint,
		"departure_time":  departure.Format(time.RFC3339),
		"arrival_points": []map[string]any{
			{"arrival_point": arrPoint, "price": 25.0, "arrival_time": departure.Add(2 * time.Hour).Format(time.RFC3339)},
		},
	}))

	coupe := dataID(call("POST", base+"/carriage-types", admin, map[string]any{
		"carriage_type_name": "coupe",
	}))
	carriage := dataID(call("POST", base+"/carriages", admin, map[string]any{
		"route": route, "carriage_type": coupe, "seat_amount": 36,
	}))

	call("GET", base+"/routes/search?departure_city="+depCity, "", nil)

	purchase := call("POST", base+"/tickets", user, map[string]any{
		"carriage":        carriage,
		"seat_number":     1,
		"departure_point": depPoint,
		"arrival_point":   arrPoint,
	})
	order := purchase["data"].(map[string]any)["order"].(map[string]any)
	orderID := int64(order["id"].(float64))

	call("POST", fmt.Sprintf("%s/orders/%d/buy", base, orderID), user, nil)

	fmt.Println("smoke scenario passed")
}
