package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Signalboard API
// @version         0.1.0
// @description     Read API over normalized stock trading signals.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
