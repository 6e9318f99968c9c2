// Package proto holds the gRPC contract between the xxi server and its
// clients, generated from xxistorage.proto, plus conversions from the
// server's domain models.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative xxistorage.proto
