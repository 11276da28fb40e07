package repository

//go:generate mockgen -source=./merchant.go -destination=../mocks/mock_merchant_repository.go -package=mocks MerchantRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
