//go:generate mockgen -source=../shop_api.go  -destination=./mock_shop_api.go  -package=mocks
//go:generate mockgen -source=../storage.go   -destination=./mock_storage.go   -package=mocks
//go:generate mockgen -source=../validator.go -destination=./mock_validator.go -package=mocks
//go:generate mockgen -source=../logger.go    -destination=./mock_logger.go    -package=mocks
//go:generate mockgen -source=../views.go     -destination=./mock_views.go     -package=mocks

package mocks
