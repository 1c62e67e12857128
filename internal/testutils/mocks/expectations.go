// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	narratormock "github.com/KirkDiggler/rpg-dm/internal/clients/narrator/mock"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// ExpectOpeningScene expects one opening scene request for a party of size
// partySize and answers with story
func ExpectOpeningScene(client *narratormock.MockClient, partySize int, story *entities.StorySegment) *gomock.Call {
	return client.EXPECT().
		GetOpeningScene(gomock.Any(), gomock.Len(partySize)).
		Return(story, nil)
}

// ExpectStoryContinues expects the party to make choice after previous and
// answers with the next scene
func ExpectStoryContinues(client *narratormock.MockClient, previous, choice string, next *entities.StorySegment) *gomock.Call {
	return client.EXPECT().
		GetNextStorySegment(gomock.Any(), gomock.Any(), previous, choice).
		Return(narrator.StoryContinuation{Segment: next}, nil)
}

// ExpectCombatStarts expects choice to lead into a fight with monster
func ExpectCombatStarts(client *narratormock.MockClient, previous, choice string, monster entities.Monster, narration string) *gomock.Call {
	return client.EXPECT().
		GetNextStorySegment(gomock.Any(), gomock.Any(), previous, choice).
		Return(narrator.CombatStart{Encounter: &entities.CombatEncounter{
			Monster:   monster,
			Narration: narration,
		}}, nil)
}

// ExpectCombatTurn answers any combat turn request with result
func ExpectCombatTurn(client *narratormock.MockClient, result *narrator.CombatActionResult) *gomock.Call {
	return client.EXPECT().
		GetCombatActionNarration(gomock.Any(), gomock.Any()).
		Return(result, nil)
}
