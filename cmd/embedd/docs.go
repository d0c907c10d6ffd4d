package main

// General API documentation for swaggo. Run `swag init -g cmd/embedd/docs.go`
// to regenerate the docs package.
//
// @title           embedd API
// @version         1.0
// @description     HTTP API for serialized text-embedding generation.
//
// @contact.name   embedd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
