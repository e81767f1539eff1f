// Package client is used to interact with the REST APIs of a running League Client (LCU).
/*
A League Client serves two REST APIs on 127.0.0.1: the default API and the remoting API.
Each API listens on its own port and accepts its own token.

Create a Client

A client requires the connection info of a League Client and must decide for one of the two APIs.
The decision cannot be changed afterwards - a second client is required to access the other API.

	info := lcu.ConnectionInfo{
		Port:          2999,
		Token:         "...",
		RemotingPort:  3000,
		RemotingToken: "...",
	}

	c, err := client.New(info, false)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	defer c.Shutdown()

Send Requests

The methods of a client return the decoded JSON response body as untyped value.
A response with status 204 results in the value {"status": 204}.
Responses with other status codes are decoded as they are - a LCU error body is not an error.

	v, err := c.Get(context.Background(), "/lol-summoner/v1/current-summoner")

For typed responses, the generic functions [Get], [Post], [PostNoBody], [Put] and [Delete] can be used:

	type summoner struct {
		GameName string `json:"gameName"`
	}

	result, err := client.Get[summoner](context.Background(), c, "/lol-summoner/v1/current-summoner")
	if err != nil {
		return err
	}
	if !result.NoContent {
		log.Println(result.Value.GameName)
	}

Errors are of type [lcu.Error].
*/
package client
