// Package gen holds generated code (protobuf stubs). It is produced by
// `go generate ./gen` and not edited by hand.
package gen

//go:generate protoc --proto_path=../proto --go_out=./proto --go_opt=paths=source_relative --go-grpc_out=./proto --go-grpc_opt=paths=source_relative carboncore/v1/carboncore.proto
