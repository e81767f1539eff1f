// Package server provides a local stand-in for the REST APIs of a League Client.
/*
server is intended for testing code that uses the client package, without a running League Client.

Like the League Client, a server serves HTTPS on 127.0.0.1, using a self-signed certificate, and requires basic authentication with the username "riot" and a token as password.
Requests with a missing or wrong authorization are answered with HTTP 401 and a LCU error body.
Requests to endpoints without handler are answered with HTTP 404 and a LCU error body.

	s := server.New("token")
	s.Handle("GET /lol-summoner/v1/current-summoner", http.StatusOK, `{"gameName":"test"}`)

	s.ListenAndServe()
	defer s.Shutdown()

	c, err := client.New(lcu.ConnectionInfo{Port: s.Port(), Token: "token"}, false)
*/
package server
