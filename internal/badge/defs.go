package badge

// DefaultTag is applied to entries created without explicit tags and
// referenced by the tag badges below.
const DefaultTag = "Make Love"

// Defaults returns the built-in badge table. Order is display order.
func Defaults() []Def {
	return []Def{
		// Milestones
		{ID: "first_step", Name: "First Step", Desc: "Recorded your first moment.", Icon: "footprint", Target: 1, Rule: countRule{}},
		{ID: "getting_started", Name: "Getting Started", Desc: "Recorded 10 times.", Icon: "filter_1", Target: 10, Rule: countRule{}},
		{ID: "enthusiast", Name: "Enthusiast", Desc: "Recorded 50 times.", Icon: "favorite", Target: 50, Rule: countRule{}},
		{ID: "centurion", Name: "Centurion", Desc: "Recorded 100 times.", Icon: "military_tech", Target: 100, Rule: countRule{}},
		{ID: "legend", Name: "Legend", Desc: "Recorded 500 times.", Icon: "diamond", Target: 500, Rule: countRule{}},

		// Consistency
		{ID: "warming_up", Name: "Warming Up", Desc: "3-day streak.", Icon: "local_fire_department", Target: 3, Rule: streakRule{}},
		{ID: "on_fire", Name: "On Fire", Desc: "7-day streak.", Icon: "whatshot", Target: 7, Rule: streakRule{}},
		{ID: "unstoppable", Name: "Unstoppable", Desc: "14-day streak.", Icon: "bolt", Target: 14, Rule: streakRule{}},
		{ID: "month_master", Name: "Month Master", Desc: "30-day streak.", Icon: "calendar_month", Target: 30, Rule: streakRule{}},

		// Intensity
		{ID: "double_trouble", Name: "Double Trouble", Desc: "2 times in one day.", Icon: "looks_two", Target: 2, Rule: dailyMaxRule{}},
		{ID: "hat_trick", Name: "Hat Trick", Desc: "3 times in one day.", Icon: "looks_3", Target: 3, Rule: dailyMaxRule{}},
		{ID: "insatiable", Name: "Insatiable", Desc: "5 times in one day.", Icon: "all_inclusive", Target: 5, Rule: dailyMaxRule{}},

		// Timing and context
		{ID: "early_bird", Name: "Early Bird", Desc: "5 morning sessions (5AM-9AM).", Icon: "wb_twilight", Target: 5, Rule: windowRule{startHour: 5, endHour: 9}},
		{ID: "night_owl", Name: "Night Owl", Desc: "10 late night sessions (10PM-4AM).", Icon: "bedtime", Target: 10, Rule: windowRule{startHour: 22, endHour: 4, night: true}},
		{ID: "weekend_warrior", Name: "Weekend Warrior", Desc: "10 sessions on weekends.", Icon: "weekend", Target: 10, Rule: weekendRule{}},

		// Duration
		{ID: "quickie", Name: "Quickie", Desc: "10 quick sessions (<15m).", Icon: "timer", Target: 10, Rule: durationRule{minutes: 15}},
		{ID: "marathon", Name: "Marathon", Desc: "5 long sessions (>45m).", Icon: "timelapse", Target: 5, Rule: durationRule{minutes: 45, over: true}},

		// Tags
		{ID: "adventurer", Name: "Adventurer", Desc: "Logged on vacation.", Icon: "flight", Target: 1, Rule: tagRule{tag: "Vacation"}},

		// Hidden until unlocked
		{ID: "cupid", Name: "Cupid's Arrow", Desc: "Logged on Valentine's Day (Feb 14).", Icon: "favorite", Target: 1, Secret: true, Rule: dateRule{month: 1, day: 14}},
		{ID: "new_year", Name: "New Year Spark", Desc: "Logged on Jan 1st.", Icon: "celebration", Target: 1, Secret: true, Rule: dateRule{month: 0, day: 1}},
		{ID: "the_answer", Name: "The Answer", Desc: "Recorded exactly 42 times.", Icon: "psychology", Target: 42, Secret: true, Rule: exactCountRule{}},
	}
}
