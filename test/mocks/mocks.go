// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/warehouse_service.go -destination=warehouse_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/transfer_service.go -destination=transfer_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/pos_service.go -destination=pos_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/warehouse_repository.go -destination=warehouse_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/kitchen_repository.go -destination=kitchen_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/transfer_repository.go -destination=transfer_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/recipe_repository.go -destination=recipe_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/reservation_repository.go -destination=reservation_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/batch_number.go -destination=batch_number_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
