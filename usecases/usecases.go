package usecases

import (
	"errors"
	"math/rand"

	"aestheti-qr-server/entities"
	"aestheti-qr-server/repositories"

	"gorm.io/gorm"
)

type ProfilePicUseCase struct {
	ProfilePicRepo repositories.ProfilePicRepository
}

func NewProfilePicUseCase(repo repositories.ProfilePicRepository) *ProfilePicUseCase {
	return &ProfilePicUseCase{ProfilePicRepo: repo}
}

// Create persists the first profile picture for an account. The unique
// index on user_id rejects a second insert for the same account.
func (uc *ProfilePicUseCase) Create(userID, imageURL string) (*entities.ProfilePic, error) {
	if userID == "" || imageURL == "" {
		return nil, ErrProfilePicFieldsRequired
	}
	pic := &entities.ProfilePic{UserID: userID, ImageURL: imageURL}
	if err := uc.ProfilePicRepo.Create(pic); err != nil {
		return nil, err
	}
	return pic, nil
}

// Get retrieves the profile picture for an account.
func (uc *ProfilePicUseCase) Get(userID string) (*entities.ProfilePic, error) {
	pic, err := uc.ProfilePicRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfilePicNotFound
	}
	if err != nil {
		return nil, err
	}
	return pic, nil
}

// Update replaces the stored image URL in place and returns the updated
// record. It never creates a record for an unknown account.
func (uc *ProfilePicUseCase) Update(userID, imageURL string) (*entities.ProfilePic, error) {
	if imageURL == "" {
		return nil, ErrProfilePicImageRequired
	}
	pic, err := uc.ProfilePicRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfilePicNotFound
	}
	if err != nil {
		return nil, err
	}
	pic.ImageURL = imageURL
	if err := uc.ProfilePicRepo.Update(pic); err != nil {
		return nil, err
	}
	return pic, nil
}

// Delete removes the profile picture for an account.
func (uc *ProfilePicUseCase) Delete(userID string) error {
	_, err := uc.ProfilePicRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProfilePicNotFound
	}
	if err != nil {
		return err
	}
	return uc.ProfilePicRepo.DeleteByUserID(userID)
}

type QRCodeUseCase struct {
	QRCodeRepo repositories.QRCodeRepository
}

func NewQRCodeUseCase(repo repositories.QRCodeRepository) *QRCodeUseCase {
	return &QRCodeUseCase{QRCodeRepo: repo}
}

// Create saves a rendered QR code into the owner's library. The name is
// optional and duplicates are allowed.
func (uc *QRCodeUseCase) Create(userID, imageURL, name string) (*entities.QRCode, error) {
	if userID == "" || imageURL == "" {
		return nil, ErrQRCodeFieldsRequired
	}
	code := &entities.QRCode{UserID: userID, ImageURL: imageURL, QRCodeName: name}
	if err := uc.QRCodeRepo.Create(code); err != nil {
		return nil, err
	}
	return code, nil
}

// ListAll returns the library for an account, or every record when
// userID is empty. With random set the result is shuffled, which the
// dashboard uses for its collage view. An empty result is an empty
// slice, never an error.
func (uc *QRCodeUseCase) ListAll(userID string, random bool) ([]entities.QRCode, error) {
	codes, err := uc.QRCodeRepo.GetAll(userID)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []entities.QRCode{}
	}
	if random {
		rand.Shuffle(len(codes), func(i, j int) {
			codes[i], codes[j] = codes[j], codes[i]
		})
	}
	return codes, nil
}

// Search filters by owner and by case-insensitive substring match on
// the code name. Both filters are optional; with neither set the whole
// collection comes back.
func (uc *QRCodeUseCase) Search(userID, name string) ([]entities.QRCode, error) {
	codes, err := uc.QRCodeRepo.Search(userID, name)
	if err != nil {
		return nil, err
	}
	if codes == nil {
		codes = []entities.QRCode{}
	}
	return codes, nil
}
