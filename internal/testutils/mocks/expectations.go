// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
	storymock "github.com/KirkDiggler/rpg-narrative/internal/repositories/story/mock"
)

// ExpectStoryLine sets up a single lookup of line; a nil line reads as absent
func ExpectStoryLine(mockRepo *storymock.MockRepository, lineID int, line *entities.DialogueLine, err error) {
	if err != nil {
		mockRepo.EXPECT().
			GetStoryLine(gomock.Any(), story.GetStoryLineInput{LineID: lineID}).
			Return(nil, err)
		return
	}

	mockRepo.EXPECT().
		GetStoryLine(gomock.Any(), story.GetStoryLineInput{LineID: lineID}).
		Return(&story.GetStoryLineOutput{Line: line}, nil)
}

// ExpectHealthEvent sets up a single combat event lookup for lineID
func ExpectHealthEvent(mockRepo *storymock.MockRepository, lineID int, event *entities.HealthEvent, err error) {
	if err != nil {
		mockRepo.EXPECT().
			GetHealthEvent(gomock.Any(), story.GetHealthEventInput{LineID: lineID}).
			Return(nil, err)
		return
	}

	mockRepo.EXPECT().
		GetHealthEvent(gomock.Any(), story.GetHealthEventInput{LineID: lineID}).
		Return(&story.GetHealthEventOutput{Event: event}, nil)
}

// ExpectLineRange sets up a single range lookup for a location
func ExpectLineRange(mockRepo *storymock.MockRepository, locationID int, out *story.GetLineRangeOutput, err error) {
	mockRepo.EXPECT().
		GetLineRange(gomock.Any(), story.GetLineRangeInput{LocationID: locationID}).
		Return(out, err)
}
