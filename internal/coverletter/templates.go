package coverletter

const softwareEngineerTemplate = `Dear Hiring Manager,

I am writing to express my strong interest in the {{.Position}} position at {{.Company}}. With my background in software development and passion for creating innovative solutions, I believe I would be a valuable addition to your team.

My technical skills include {{.Skills}}, and I have experience in {{.Experience}}. I am particularly excited about the opportunity to contribute to {{.Company}}'s mission and work on challenging technical problems.

Throughout my career, I have demonstrated the ability to write clean, maintainable code and collaborate effectively with cross-functional teams. My education in {{.Education}} has provided me with a strong foundation in computer science principles and best practices.

I am confident that my technical expertise, problem-solving abilities, and collaborative approach would make me an asset to your team. I would welcome the opportunity to discuss how my skills and experience align with your needs.

Thank you for considering my application. I look forward to the possibility of contributing to {{.Company}}'s success.

Best regards,
{{.Name}}
`

const dataScientistTemplate = `Dear Hiring Manager,

I am excited to apply for the {{.Position}} position at {{.Company}}. With my analytical mindset and expertise in data science, I am confident I can contribute significantly to your data-driven initiatives.

My technical skills include {{.Skills}}, and I have experience in {{.Experience}}. I am particularly drawn to {{.Company}}'s commitment to leveraging data for strategic decision-making.

Throughout my career, I have successfully developed machine learning models, conducted statistical analyses, and translated complex data insights into actionable business recommendations. My education in {{.Education}} has equipped me with the theoretical foundation and practical skills needed for advanced data analysis.

I am eager to apply my analytical skills to help {{.Company}} uncover valuable insights and drive innovation through data.

Thank you for considering my application. I look forward to discussing how I can contribute to your data science team.

Best regards,
{{.Name}}
`

const productManagerTemplate = `Dear Hiring Manager,

I am writing to express my interest in the {{.Position}} position at {{.Company}}. With my strategic thinking and experience in product development, I believe I can help drive {{.Company}}'s product vision and growth.

My background includes {{.Skills}}, and I have experience in {{.Experience}}. I am particularly excited about the opportunity to lead product initiatives at {{.Company}} and work with talented teams to deliver exceptional user experiences.

Throughout my career, I have successfully managed product lifecycles, conducted market research, and collaborated with engineering and design teams to bring products from concept to market. My education in {{.Education}} has provided me with a strong foundation in business strategy and user-centered design.

I am confident that my product management expertise, analytical skills, and collaborative leadership style would make me a valuable addition to your team.

Thank you for considering my application. I look forward to discussing how I can contribute to {{.Company}}'s product success.

Best regards,
{{.Name}}
`

const generalTemplate = `Dear Hiring Manager,

I am writing to express my interest in the {{.Position}} position at {{.Company}}. With my background and experience, I believe I would be a valuable addition to your team.

My skills include {{.Skills}}, and I have experience in {{.Experience}}. I am particularly excited about the opportunity to contribute to {{.Company}}'s mission and work on meaningful projects.

My education in {{.Education}} has provided me with a strong foundation in my field, and I am eager to apply my knowledge and skills in a dynamic environment like {{.Company}}.

I am confident that my abilities and enthusiasm would make me an asset to your organization. I would welcome the opportunity to discuss how my background aligns with your needs.

Thank you for considering my application. I look forward to the possibility of joining your team.

Best regards,
{{.Name}}
`
