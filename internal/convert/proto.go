// Package convert maps domain models to protobuf messages and back.
package convert

import (
	"encoding/json"
	"maps"
	"slices"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/workout"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

func toStrings(types []workout.Type) []string {
	if len(types) == 0 {
		return nil
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func toTypes(ss []string) []workout.Type {
	if len(ss) == 0 {
		return nil
	}
	out := make([]workout.Type, len(ss))
	for i, s := range ss {
		out[i] = workout.Type(s)
	}
	return out
}

// --- Plan ---

// ToProtoExercise converts one exercise. A nil set count is sent as zero.
func ToProtoExercise(e workout.Exercise) *pb.Exercise {
	out := &pb.Exercise{
		Name:         e.Name,
		Description:  e.Description,
		Difficulty:   e.Difficulty,
		Duration:     e.Duration,
		Reps:         e.Reps,
		MuscleGroups: e.MuscleGroups,
		Equipment:    e.Equipment,
		Rest:         e.Rest,
	}
	if e.Sets != nil {
		out.Sets = int32(*e.Sets)
	}
	return out
}

// FromProtoExercise converts one exercise back; zero sets means unspecified.
func FromProtoExercise(e *pb.Exercise) workout.Exercise {
	out := workout.Exercise{
		Name:         e.GetName(),
		Description:  e.GetDescription(),
		Difficulty:   e.GetDifficulty(),
		Duration:     e.GetDuration(),
		Reps:         e.GetReps(),
		MuscleGroups: e.GetMuscleGroups(),
		Equipment:    e.GetEquipment(),
		Rest:         e.GetRest(),
	}
	if n := int(e.GetSets()); n > 0 {
		out.Sets = &n
	}
	return out
}

func toProtoExercises(es []workout.Exercise) []*pb.Exercise {
	if len(es) == 0 {
		return nil
	}
	out := make([]*pb.Exercise, len(es))
	for i, e := range es {
		out[i] = ToProtoExercise(e)
	}
	return out
}

func fromProtoExercises(es []*pb.Exercise) []workout.Exercise {
	if len(es) == 0 {
		return nil
	}
	out := make([]workout.Exercise, len(es))
	for i, e := range es {
		out[i] = FromProtoExercise(e)
	}
	return out
}

// ToProtoDay converts one calendar day.
func ToProtoDay(d workout.DayWorkout) *pb.DayWorkout {
	return &pb.DayWorkout{
		Date:                d.Date,
		Types:               toStrings(d.Types),
		Workouts:            toProtoExercises(d.Workouts),
		AlternativeWorkouts: toProtoExercises(d.AlternativeWorkouts),
		Completed:           d.Completed,
		CompletedTypes:      toStrings(d.CompletedTypes),
		StreakSaver:         d.StreakSaver,
	}
}

// FromProtoDay converts one calendar day back.
func FromProtoDay(d *pb.DayWorkout) workout.DayWorkout {
	return workout.DayWorkout{
		Date:                d.GetDate(),
		Types:               toTypes(d.GetTypes()),
		Workouts:            fromProtoExercises(d.GetWorkouts()),
		AlternativeWorkouts: fromProtoExercises(d.GetAlternativeWorkouts()),
		Completed:           d.GetCompleted(),
		CompletedTypes:      toTypes(d.GetCompletedTypes()),
		StreakSaver:         d.GetStreakSaver(),
	}
}

// ToProtoPlan converts a plan; nil stays nil.
func ToProtoPlan(p *workout.Plan) *pb.Plan {
	if p == nil {
		return nil
	}
	days := make([]*pb.DayWorkout, len(p.DailyWorkouts))
	for i, d := range p.DailyWorkouts {
		days[i] = ToProtoDay(d)
	}
	return &pb.Plan{
		Id:              p.ID,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		TotalDays:       int32(p.TotalDays),
		WeeklyStructure: p.WeeklyStructure,
		DailyWorkouts:   days,
	}
}

// FromProtoPlan converts a plan back; nil stays nil.
func FromProtoPlan(p *pb.Plan) *workout.Plan {
	if p == nil {
		return nil
	}
	days := make([]workout.DayWorkout, len(p.GetDailyWorkouts()))
	for i, d := range p.GetDailyWorkouts() {
		days[i] = FromProtoDay(d)
	}
	return &workout.Plan{
		ID:              p.GetId(),
		StartDate:       p.GetStartDate(),
		EndDate:         p.GetEndDate(),
		TotalDays:       int(p.GetTotalDays()),
		WeeklyStructure: p.GetWeeklyStructure(),
		DailyWorkouts:   days,
	}
}

// --- Generation ---

// ToProtoProfile converts an assessment summary.
func ToProtoProfile(p planner.Profile) *pb.Profile {
	return &pb.Profile{
		Name:         p.Name,
		Age:          int32(p.Age),
		Sex:          p.Sex,
		HeightCm:     p.HeightCm,
		WeightKg:     p.WeightKg,
		FitnessLevel: p.FitnessLevel,
		Goals:        p.Goals,
		Injuries:     p.Injuries,
		Equipment:    p.Equipment,
	}
}

// FromProtoProfile converts an assessment summary back; nil is the empty profile.
func FromProtoProfile(p *pb.Profile) planner.Profile {
	return planner.Profile{
		Name:         p.GetName(),
		Age:          int(p.GetAge()),
		Sex:          p.GetSex(),
		HeightCm:     p.GetHeightCm(),
		WeightKg:     p.GetWeightKg(),
		FitnessLevel: p.GetFitnessLevel(),
		Goals:        p.GetGoals(),
		Injuries:     p.GetInjuries(),
		Equipment:    p.GetEquipment(),
	}
}

// ToProtoPlanRequest converts a generation request. Answers are sent sorted
// by question id so equal requests encode equally.
func ToProtoPlanRequest(r planner.PlanRequest) *pb.GeneratePlanRequest {
	out := &pb.GeneratePlanRequest{
		Profile:   ToProtoProfile(r.Profile),
		StartDate: r.StartDate,
		Days:      int32(r.Days),
	}
	for _, q := range r.Questions {
		out.Questions = append(out.Questions, &pb.Question{Id: q.ID, Text: q.Text, Options: q.Options})
	}
	for _, id := range slices.Sorted(maps.Keys(r.Answers)) {
		out.Answers = append(out.Answers, &pb.Answer{QuestionId: id, Value: r.Answers[id]})
	}
	return out
}

// FromProtoPlanRequest converts a generation request back. A repeated
// question id keeps the last answer.
func FromProtoPlanRequest(r *pb.GeneratePlanRequest) planner.PlanRequest {
	out := planner.PlanRequest{
		Profile:   FromProtoProfile(r.GetProfile()),
		StartDate: r.GetStartDate(),
		Days:      int(r.GetDays()),
	}
	for _, q := range r.GetQuestions() {
		out.Questions = append(out.Questions, planner.Question{ID: q.GetId(), Text: q.GetText(), Options: q.GetOptions()})
	}
	if len(r.GetAnswers()) > 0 {
		out.Answers = make(map[string]string, len(r.GetAnswers()))
		for _, a := range r.GetAnswers() {
			out.Answers[a.GetQuestionId()] = a.GetValue()
		}
	}
	return out
}

// --- Account ---

// ToProtoAccount converts a domain account, dropping spent inventory.
func ToProtoAccount(a model.Account) *pb.Account {
	out := &pb.Account{
		Id:        a.ID.String(),
		Username:  a.Username,
		Avatar:    a.Avatar,
		Energy:    a.Energy,
		Streak:    int32(a.Streak),
		IsAdmin:   a.IsAdmin,
		CreatedAt: ts(a.CreatedAt),
	}
	for _, it := range a.Inventory {
		if it.Quantity <= 0 {
			continue
		}
		out.Inventory = append(out.Inventory, &pb.InventoryItem{Sku: it.SKU, Quantity: it.Quantity})
	}
	return out
}

// --- Progress ---

// ToProtoProgress converts a stored payload.
func ToProtoProgress(p model.Progress) *pb.Progress {
	return &pb.Progress{
		QuestionnaireProgress: p.QuestionnaireProgress,
		WorkoutPlan:           ToProtoPlan(p.WorkoutPlan),
		AssessmentData:        p.AssessmentData,
		ChatHistory:           p.ChatHistory,
		AcceptedTerms:         p.AcceptedTerms,
		AcceptedPrivacy:       p.AcceptedPrivacy,
		Version:               p.Version,
		UpdatedAt:             ts(p.UpdatedAt),
	}
}

// FromProtoProgress converts a client payload to the domain model.
// Version and UpdatedAt are owned by the server and are not copied.
func FromProtoProgress(p *pb.Progress) model.Progress {
	return model.Progress{
		QuestionnaireProgress: raw(p.GetQuestionnaireProgress()),
		WorkoutPlan:           FromProtoPlan(p.GetWorkoutPlan()),
		AssessmentData:        raw(p.GetAssessmentData()),
		ChatHistory:           raw(p.GetChatHistory()),
		AcceptedTerms:         p.GetAcceptedTerms(),
		AcceptedPrivacy:       p.GetAcceptedPrivacy(),
	}
}

// FromProtoStoredProgress is FromProtoProgress plus the server-owned fields,
// for clients reading back what the server stored.
func FromProtoStoredProgress(p *pb.Progress) model.Progress {
	m := FromProtoProgress(p)
	m.Version = p.GetVersion()
	m.UpdatedAt = fromTS(p.GetUpdatedAt())
	return m
}

func raw(b []byte) json.RawMessage {
	if len(b) == 0 {
		return nil
	}
	return json.RawMessage(b)
}

// ToProtoSave converts a save outcome.
func ToProtoSave(r model.SaveResult) *pb.SaveProgressResponse {
	return &pb.SaveProgressResponse{
		Version:       r.Version,
		Energy:        r.Energy,
		Streak:        int32(r.Streak),
		EnergyAwarded: r.EnergyAwarded,
		DoubledEnergy: r.DoubledEnergy,
	}
}

// --- Shop and admin ---

// ToProtoShopItems converts the catalog.
func ToProtoShopItems(items []model.ShopItem) []*pb.ShopItem {
	out := make([]*pb.ShopItem, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.ShopItem{
			Sku:         it.SKU,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Consumable:  it.Consumable,
		})
	}
	return out
}

// ToProtoDiagnostics converts the admin view.
func ToProtoDiagnostics(d model.Diagnostics) *pb.DiagnosticsResponse {
	return &pb.DiagnosticsResponse{
		Users:     d.Users,
		Progress:  d.Progress,
		Version:   d.Version,
		Model:     d.Model,
		StartedAt: ts(d.StartedAt),
	}
}
