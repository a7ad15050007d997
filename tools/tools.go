//go:build tools

// Пакет tools фиксирует инструменты генерации.
// Генераторы protoc ставятся вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.6.0
//
// Стабы AdminService пересобираются из корня репозитория:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//		--go-grpc_out=. --go-grpc_opt=paths=source_relative \
//		proto/storefront/v1/admin_service.proto
package tools
