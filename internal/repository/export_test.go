package repository

const HabitColumns = habitColumns
